package sltools

import "os"

// FileExist reports whether a file or directory exists at name.
func FileExist(name string) bool {
	_, err := os.Stat(name)
	return err == nil
}
