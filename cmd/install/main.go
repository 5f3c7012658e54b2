package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/InkyQuill/gitlab-rest-mcp/pkg/installer"
)

func main() {
	projectRoot, err := installer.GetProjectRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to get project root: %v\n", err)
		os.Exit(1)
	}

	answers, err := installer.RunForm(os.Stdin, os.Stdout)
	if errors.Is(err, installer.ErrAborted) {
		fmt.Println("Aborted, nothing was changed.")
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	res, err := installer.Install(answers, projectRoot, installer.GetConfigPaths(), os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nConfigured %d environment(s).\n", len(res.Written))
	fmt.Println("\nNext steps:")
	fmt.Println("1. Restart your development environment(s)")
	fmt.Printf("2. The MCP server is available as '%s'\n", installer.ServerName)
	if answers.Mode == installer.ModeDocker {
		fmt.Printf("3. Make sure the Docker image exists: docker build -t %s .\n", installer.DockerImage)
	}
}
