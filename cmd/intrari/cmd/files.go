package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rezonia/intrari-furnizori/internal/loader"
)

// collectFiles expands globs and directories into batch files.
func collectFiles(args []string) ([]string, error) {
	var files []string

	for _, arg := range args {
		matches, err := filepath.Glob(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", arg, err)
		}

		if len(matches) == 0 {
			info, err := os.Stat(arg)
			if err != nil {
				return nil, fmt.Errorf("file not found: %s", arg)
			}

			if info.IsDir() {
				err := filepath.Walk(arg, func(path string, info os.FileInfo, err error) error {
					if err != nil {
						return err
					}
					if !info.IsDir() && isSupportedFile(path) {
						files = append(files, path)
					}
					return nil
				})
				if err != nil {
					return nil, err
				}
			} else {
				files = append(files, arg)
			}
		} else {
			for _, match := range matches {
				info, err := os.Stat(match)
				if err != nil {
					continue
				}
				if info.IsDir() {
					sub, err := collectFiles([]string{filepath.Join(match, "*")})
					if err != nil {
						return nil, err
					}
					files = append(files, sub...)
					continue
				}
				if isSupportedFile(match) || match == arg {
					files = append(files, match)
				}
			}
		}
	}

	return files, nil
}

func isSupportedFile(path string) bool {
	return loader.DetectFormat(path) != loader.FormatUnknown
}
