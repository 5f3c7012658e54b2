package installer

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	ModeLocal  = "local"
	ModeDocker = "docker"

	// DockerImage is the image tag used by the docker launch mode.
	DockerImage = "gitlab-rest-mcp:latest"
	binaryName  = "gitlab-rest-mcp"
)

// BinaryConfig holds how an MCP client launches the server.
type BinaryConfig struct {
	Mode    string
	Command string
	Args    []string
	Env     map[string]string
}

// GetBinaryConfig returns the launch command for mode. Local mode requires
// the binary built under projectRoot/bin.
func GetBinaryConfig(mode string, projectRoot string) (*BinaryConfig, error) {
	bc := &BinaryConfig{Mode: mode, Env: make(map[string]string)}

	switch mode {
	case ModeDocker:
		bc.Command = "docker"
		bc.Args = []string{"run", "-i", "--rm"}
		return bc, nil
	case ModeLocal, "":
		bc.Mode = ModeLocal
		path, err := filepath.Abs(filepath.Join(projectRoot, "bin", binaryName))
		if err != nil {
			return nil, fmt.Errorf("failed to get absolute path: %w", err)
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, fmt.Errorf("binary not found at %s. Please run 'make build' first", path)
		}
		bc.Command = path
		return bc, nil
	}
	return nil, fmt.Errorf("invalid mode: %s. Must be '%s' or '%s'", mode, ModeLocal, ModeDocker)
}

// launchArgs returns the arguments for env. Docker forwards each variable
// with -e and ends with the image and the stdio command.
func (bc *BinaryConfig) launchArgs(env map[string]string) []string {
	args := append([]string(nil), bc.Args...)
	if bc.Mode == ModeDocker {
		for _, k := range sortedKeys(env) {
			args = append(args, "-e", k)
		}
		args = append(args, DockerImage)
	}
	return append(args, "stdio")
}
