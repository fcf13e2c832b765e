// Package cli implements the auth command-line client: one subcommand per
// service operation, each printing the JSON result.
package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/dmitrijs2005/authkeeper/internal/client/client"
	"github.com/dmitrijs2005/authkeeper/internal/client/config"
	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/rpc"
)

var ErrUsage = errors.New("usage: client [-a addr] [-r seconds] [-c config] register -e email -n name | login -e email | verify -t token")

type authClient interface {
	Register(ctx context.Context, email, name, password string) (*rpc.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*rpc.AuthResponse, error)
	Verify(ctx context.Context, token string) (*rpc.AuthResponse, error)
	Close() error
}

// getSimpleText and getPassword are swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var commands = []string{"register", "login", "verify"}

type App struct {
	config *config.Config
	client authClient
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewAuthClient(c.ServerEndpointAddr, c.RequestTimeout)
	if err != nil {
		return nil, err
	}
	return &App{config: c, client: apiClient, reader: bufio.NewReader(os.Stdin), out: os.Stdout}, nil
}

// Run executes the subcommand found in args. Anything before the subcommand
// name belongs to the client config and is ignored here.
func (a *App) Run(ctx context.Context, args []string) error {
	defer a.client.Close()

	i := slices.IndexFunc(args, func(s string) bool { return slices.Contains(commands, s) })
	if i < 0 {
		return ErrUsage
	}
	cmd, rest := args[i], args[i+1:]

	var (
		resp *rpc.AuthResponse
		err  error
	)
	switch cmd {
	case "register":
		resp, err = a.register(ctx, rest)
	case "login":
		resp, err = a.login(ctx, rest)
	case "verify":
		resp, err = a.verify(ctx, rest)
	}
	if err != nil {
		return err
	}

	return a.print(resp)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func (a *App) register(ctx context.Context, args []string) (*rpc.AuthResponse, error) {
	fs := newFlagSet("register")
	email := fs.String("e", "", "email")
	name := fs.String("n", "", "display name")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	if err := a.prompt(email, "Enter email"); err != nil {
		return nil, err
	}
	if err := a.prompt(name, "Enter name"); err != nil {
		return nil, err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(password)

	return a.client.Register(ctx, *email, *name, string(password))
}

func (a *App) login(ctx context.Context, args []string) (*rpc.AuthResponse, error) {
	fs := newFlagSet("login")
	email := fs.String("e", "", "email")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	if err := a.prompt(email, "Enter email"); err != nil {
		return nil, err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(password)

	return a.client.Login(ctx, *email, string(password))
}

func (a *App) verify(ctx context.Context, args []string) (*rpc.AuthResponse, error) {
	fs := newFlagSet("verify")
	token := fs.String("t", "", "token")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	if err := a.prompt(token, "Enter token"); err != nil {
		return nil, err
	}

	return a.client.Verify(ctx, *token)
}

// prompt asks for *v interactively when it was not given as a flag.
func (a *App) prompt(v *string, text string) error {
	if *v != "" {
		return nil
	}
	s, err := getSimpleText(a.reader, text, a.out)
	if err != nil {
		return err
	}
	*v = s
	return nil
}

func (a *App) print(resp *rpc.AuthResponse) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}
