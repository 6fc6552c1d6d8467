package musclerunner

import (
	"os"
	"path/filepath"
	"runtime"
)

// Locate resolves the MUSCLE5 executable path. Precedence: explicit config,
// then the MUSCLE5_PATH environment variable, then common per-OS install
// locations, then whatever "muscle" resolves to on PATH.
func Locate(configured string) string {
	if configured != "" {
		return configured
	}
	if p := os.Getenv("MUSCLE5_PATH"); p != "" {
		return p
	}
	for _, p := range defaultCandidates() {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return "muscle"
}

func defaultCandidates() []string {
	switch runtime.GOOS {
	case "windows":
		programFiles := os.Getenv("PROGRAMFILES")
		if programFiles == "" {
			programFiles = `C:\Program Files`
		}
		programFilesX86 := os.Getenv("PROGRAMFILES(X86)")
		if programFilesX86 == "" {
			programFilesX86 = `C:\Program Files (x86)`
		}
		return []string{
			filepath.Join(programFiles, "muscle", "muscle.exe"),
			filepath.Join(programFilesX86, "muscle", "muscle.exe"),
			"muscle.exe",
			"muscle-win64.v5.3.exe",
		}
	case "darwin":
		return []string{
			"/usr/local/bin/muscle",
			"/opt/homebrew/bin/muscle",
		}
	default:
		return []string{
			"/usr/bin/muscle",
			"/usr/local/bin/muscle",
		}
	}
}
