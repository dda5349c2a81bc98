// Copyright (c) 2025, The Colorbar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsx provides filesystem helpers for files and embedded filesystems.
package fsx

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gocolorbar.org/colorbar/base/errors"
)

// FileExists checks whether given file exists, returning true if so,
// false if not, and error if there is an error in accessing the file.
func FileExists(filePath string) (bool, error) {
	fileInfo, err := os.Stat(filePath)
	if err == nil {
		return !fileInfo.IsDir(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// FileExistsFS checks whether given file exists, returning true if so,
// false if not, and error if there is an error in accessing the file.
func FileExistsFS(fsys fs.FS, filePath string) (bool, error) {
	if fsys, ok := fsys.(fs.StatFS); ok {
		fileInfo, err := fsys.Stat(filePath)
		if err == nil {
			return !fileInfo.IsDir(), nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	fp, err := fsys.Open(filePath)
	if err == nil {
		fp.Close()
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// ExtFilenames returns all the file names with given extension(s)
// in given directory, in sorted order
// (if exts is empty then all files are returned).
func ExtFilenames(path string, exts ...string) []string {
	return ExtFilenamesFS(os.DirFS(path), ".", exts...)
}

// ExtFilenamesFS returns all the file names with given extension(s)
// in given FS filesystem, in sorted order
// (if exts is empty then all files are returned).
func ExtFilenamesFS(fsys fs.FS, path string, exts ...string) []string {
	files, err := fs.ReadDir(fsys, path)
	if err != nil {
		return nil
	}
	sz := len(files)
	if sz == 0 {
		return nil
	}
	var fns []string
	for i := sz - 1; i >= 0; i-- {
		fn := files[i].Name()
		if files[i].IsDir() {
			continue
		}
		if len(exts) == 0 {
			fns = append(fns, fn)
			continue
		}
		ext := filepath.Ext(fn)
		for _, ex := range exts {
			if strings.EqualFold(ext, ex) {
				fns = append(fns, fn)
				break
			}
		}
	}
	sort.StringSlice(fns).Sort()
	return fns
}

// TrimExt returns the given file name with any extension removed.
func TrimExt(fname string) string {
	return strings.TrimSuffix(fname, filepath.Ext(fname))
}
