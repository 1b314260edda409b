package cmd

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/emrgen/glossary"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configFileName = "context"
	configFileType = "yml"
)

// serverAddr is set by the --server flag and wins over the saved context.
var serverAddr string

var contextCommand = &cobra.Command{
	Use:   "context",
	Short: "context commands",
}

func init() {
	contextCommand.AddCommand(setContextCommand())
	contextCommand.AddCommand(currentContextCommand())
	contextCommand.AddCommand(resetContextCommand())
}

// Context is the client state kept between CLI invocations.
type Context struct {
	Server string `mapstructure:"server"`
}

// saves the context info to the config file in ~/.config/glossary
func setContextCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "set",
		Short: "set context",
		Run: func(cmd *cobra.Command, args []string) {
			if checkMissingFlags(cmd, []string{"server"}) {
				return
			}

			if err := writeContext(Context{Server: serverAddr}); err != nil {
				color.Red("error writing config file: %v", err)
				return
			}
			color.Green("context saved")
		},
	}

	command.Example = "glossary context set --server localhost:4020"

	return command
}

func currentContextCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "current",
		Short: "current context",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := readContext()
			if ctx.Server == "" {
				color.Yellow("no context saved, using %s", glossary.DefaultAddress)
				return
			}
			cmd.Printf("server: %s\n", ctx.Server)
		},
	}

	return command
}

func resetContextCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "reset",
		Short: "reset context",
		Run: func(cmd *cobra.Command, args []string) {
			path, err := contextFile()
			if err != nil {
				color.Red("%v", err)
				return
			}
			if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
				color.Red("error removing config file: %v", err)
				return
			}
			color.Green("context reset")
		},
	}

	return command
}

func contextDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "glossary"), nil
}

func contextFile() (string, error) {
	dir, err := contextDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName+"."+configFileType), nil
}

func contextViper() (*viper.Viper, error) {
	dir, err := contextDir()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(dir)

	return v, nil
}

func writeContext(context Context) error {
	dir, err := contextDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	v, err := contextViper()
	if err != nil {
		return err
	}
	v.Set("context", map[string]string{"server": context.Server})

	path, err := contextFile()
	if err != nil {
		return err
	}
	return v.WriteConfigAs(path)
}

func readContext() Context {
	var ctx Context

	v, err := contextViper()
	if err != nil {
		return ctx
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			color.Red("error reading config file: %v", err)
		}
		return ctx
	}

	if err := v.UnmarshalKey("context", &ctx); err != nil {
		color.Red("error unmarshalling config file: %v", err)
	}

	return ctx
}

// targetAddress resolves the server address: --server, then the saved context, then the default.
func targetAddress() string {
	if serverAddr != "" {
		return serverAddr
	}
	if ctx := readContext(); ctx.Server != "" {
		return ctx.Server
	}
	return glossary.DefaultAddress
}

func newClient() (glossary.Client, error) {
	return glossary.NewClient(targetAddress())
}
