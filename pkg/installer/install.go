package installer

import (
	"errors"
	"fmt"
	"io"

	"github.com/InkyQuill/gitlab-rest-mcp/pkg/gitlab"
)

// Result reports the config files written by Install.
type Result struct {
	Written map[string]string // environment -> path
	Failed  map[string]error
}

// Install stores the token when asked to and writes the server entry for
// every selected environment. Progress goes to w.
func Install(a Answers, projectRoot string, paths *ConfigPaths, w io.Writer) (*Result, error) {
	bc, err := GetBinaryConfig(a.Mode, projectRoot)
	if err != nil {
		return nil, err
	}

	settings := Settings{Host: a.Host, Token: a.Token, ReadOnly: a.ReadOnly}
	switch {
	case a.UseKeyring && bc.Mode == ModeDocker:
		fmt.Fprintln(w, "The OS keyring is not reachable from a container; the token is written to the client config instead.")
	case a.UseKeyring:
		host := gitlab.NormalizeHost(a.Host)
		if err := gitlab.SaveKeyringToken(gitlab.DefaultClientName, a.Token, host, gitlab.AuthPrivateToken); err != nil {
			return nil, err
		}
		fmt.Fprintf(w, "Stored token '%s' in the OS keyring\n", gitlab.DefaultClientName)
		settings.KeyringUser = gitlab.DefaultClientName
	}

	entry := CreateServerConfig(bc, settings)
	res := &Result{Written: map[string]string{}, Failed: map[string]error{}}
	for _, env := range a.Environments {
		path, err := UpdateConfig(env, paths, entry)
		if err != nil {
			fmt.Fprintf(w, "  ✗ %s: %v\n", env, err)
			res.Failed[env] = err
			continue
		}
		fmt.Fprintf(w, "  ✓ %s configured (%s)\n", env, path)
		res.Written[env] = path
	}

	if len(res.Written) == 0 {
		return res, errors.New("no environments were configured")
	}
	return res, nil
}
