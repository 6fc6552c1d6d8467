package ports

// WorkspaceLocator finds an alnscope workspace root starting from an arbitrary directory.
type WorkspaceLocator interface {
	FindRoot(startDir string) (string, error)
}
