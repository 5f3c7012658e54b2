package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	gl "gitlab.com/gitlab-org/api/client-go"
	"golang.org/x/term"

	"github.com/InkyQuill/gitlab-rest-mcp/pkg/gitlab"
)

const validationTimeout = 15 * time.Second

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage GitLab tokens stored in the OS keyring",
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Validate a token and store it in the OS keyring",
	Long: `Reads a token (hidden prompt on a terminal, otherwise the first line of stdin),
checks it against GET /user and stores it. Stored tokens are loaded when the
server starts.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		name, _ := cmd.Flags().GetString("name")
		skip, _ := cmd.Flags().GetBool("no-validate")
		authType, err := gitlab.ParseAuthType(viper.GetString("auth-type"))
		if err != nil {
			return err
		}

		token, err := readToken(cmd.InOrStdin(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		return login(cmd.Context(), cmd.OutOrStdout(), loginOptions{
			Name:       name,
			Host:       viper.GetString("host"),
			Token:      token,
			AuthType:   authType,
			SkipVerify: skip,
		})
	},
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove a token from the OS keyring",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		name, _ := cmd.Flags().GetString("name")
		if err := gitlab.DeleteKeyringToken(name); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed token '%s' from the keyring\n", name)
		return nil
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the tokens stored in the OS keyring",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		offline, _ := cmd.Flags().GetBool("offline")
		return authStatus(cmd.Context(), cmd.OutOrStdout(), !offline)
	},
}

func init() {
	for _, c := range []*cobra.Command{authLoginCmd, authLogoutCmd} {
		c.Flags().String("name", gitlab.DefaultClientName, "Name of the keyring entry")
	}
	authLoginCmd.Flags().Bool("no-validate", false, "Store the token without calling GitLab")
	authStatusCmd.Flags().Bool("offline", false, "Do not validate the stored tokens")

	authCmd.AddCommand(authLoginCmd, authLogoutCmd, authStatusCmd)
}

type loginOptions struct {
	Name       string
	Host       string
	Token      string
	AuthType   gitlab.AuthType
	SkipVerify bool
}

func login(ctx context.Context, w io.Writer, opts loginOptions) error {
	if opts.Name == "" {
		return errors.New("token name is required")
	}
	host := gitlab.NormalizeHost(opts.Host)

	if !opts.SkipVerify {
		user, err := currentUser(ctx, gitlab.ClientOptions{Host: host, Token: opts.Token, AuthType: opts.AuthType})
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Authenticated to %s as %s (ID: %d)\n", host, user.Username, user.ID)
	}

	if err := gitlab.SaveKeyringToken(opts.Name, opts.Token, host, opts.AuthType); err != nil {
		return err
	}
	fmt.Fprintf(w, "Stored token '%s' in the keyring\n", opts.Name)
	return nil
}

func authStatus(ctx context.Context, w io.Writer, validate bool) error {
	tokens, err := gitlab.LoadKeyringTokens()
	if err != nil {
		return err
	}
	if len(tokens) == 0 {
		fmt.Fprintf(w, "No tokens stored. Run '%s auth login' to add one.\n", appName)
		return nil
	}

	names := make([]string, 0, len(tokens))
	for name := range tokens {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		metadata := tokens[name]
		host := gitlab.NormalizeHost(metadata.GitLabHost)
		status := "stored"
		if validate {
			status = tokenStatus(ctx, metadata, host)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, host, status)
	}
	return nil
}

func tokenStatus(ctx context.Context, metadata *gitlab.TokenMetadata, host string) string {
	opts, err := metadata.ClientOptions(gitlab.ClientOptions{Host: host})
	if err != nil {
		return "unreadable: " + err.Error()
	}
	user, err := currentUser(ctx, opts)
	if err != nil {
		return "invalid: " + err.Error()
	}
	return fmt.Sprintf("valid (%s)", user.Username)
}

func currentUser(ctx context.Context, opts gitlab.ClientOptions) (*gl.User, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, validationTimeout)
	defer cancel()

	opts.RetryMax = 0
	client, err := gitlab.NewGitLabClient(opts)
	if err != nil {
		return nil, err
	}
	user, resp, err := client.Users.CurrentUser(gl.WithContext(ctx))
	if err != nil {
		if resp != nil && resp.StatusCode == 401 {
			return nil, errors.New("token is invalid or expired (401 Unauthorized)")
		}
		return nil, fmt.Errorf("token validation failed: %w", err)
	}
	return user, nil
}

// readToken prompts without echo when in is a terminal.
func readToken(in io.Reader, prompt io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(prompt, "GitLab token: ")
		raw, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("failed to read token: %w", err)
		}
		return checkToken(string(raw))
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	return checkToken(line)
}

func checkToken(raw string) (string, error) {
	token := strings.TrimSpace(raw)
	if token == "" {
		return "", errors.New("no token given")
	}
	return token, nil
}
