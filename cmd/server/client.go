package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/saadistik/Bashir.inc/pkg/client"
)

func clientFlags(extra ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		&cli.StringFlag{Name: "server", Value: "http://localhost:8080", Usage: "server URL", Sources: cli.EnvVars("BASHIR_SERVER")},
		&cli.StringFlag{Name: "username", Usage: "sign in as this user", Sources: cli.EnvVars("BASHIR_USERNAME")},
		&cli.StringFlag{Name: "password", Usage: "password for --username", Sources: cli.EnvVars("BASHIR_PASSWORD")},
	}, extra...)
}

// signIn returns a client signed in with the flags, or signed out when no
// username is given.
func signIn(ctx context.Context, cmd *cli.Command) (*client.Client, error) {
	c := client.New(nil, cmd.String("server"))
	if cmd.String("username") == "" {
		return c, nil
	}
	if _, err := c.Login(ctx, cmd.String("username"), cmd.String("password")); err != nil {
		return nil, fmt.Errorf("failed to sign in: %w", err)
	}
	return c, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func navigateCommand() *cli.Command {
	return &cli.Command{
		Name:      "navigate",
		Usage:     "Show which screen a path renders for a user",
		ArgsUsage: "<path>",
		Flags:     clientFlags(&cli.BoolFlag{Name: "json", Usage: "output raw JSON"}),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("path is required")
			}
			c, err := signIn(ctx, cmd)
			if err != nil {
				return err
			}
			nav, err := c.Navigate(ctx, path)
			if err != nil {
				return err
			}
			if cmd.Bool("json") {
				return printJSON(nav)
			}
			if nav.Screen == "" {
				fmt.Printf("%s: %s\n", path, nav.Decision)
				return nil
			}
			fmt.Printf("%s -> %s\n", strings.Join(nav.Chain, " -> "), nav.Screen)
			return nil
		},
	}
}

func dashboardCommand() *cli.Command {
	return &cli.Command{
		Name:  "dashboard",
		Usage: "Print the owner's business figures",
		Flags: clientFlags(
			&cli.StringFlag{Name: "granularity", Value: "weekly", Usage: "trend buckets: weekly or monthly"},
			&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			c, err := signIn(ctx, cmd)
			if err != nil {
				return err
			}
			screen, err := c.Dashboard(ctx, cmd.String("granularity"))
			if err != nil {
				return err
			}
			if cmd.Bool("json") {
				return printJSON(screen)
			}

			s := screen.Summary
			fmt.Printf("Revenue      %s\n", s.Orders.Revenue.StringFixed(2))
			fmt.Printf("Total cost   %s\n", s.Orders.TotalCost.StringFixed(2))
			fmt.Printf("Salaries     %s\n", s.EmployeeSalaries.StringFixed(2))
			fmt.Printf("Net profit   %s\n", s.Profit.StringFixed(2))
			fmt.Printf("Orders       %d pending, %d completed\n", screen.Tally.Pending, screen.Tally.Completed)
			fmt.Println()
			for _, p := range screen.Trend {
				fmt.Printf("%-8s revenue %12s  costs %12s  profit %12s\n",
					p.Label, p.Revenue.StringFixed(2), p.Costs.StringFixed(2), p.Profit.StringFixed(2))
			}
			if len(screen.Upcoming) > 0 {
				fmt.Println()
				for _, t := range screen.Upcoming {
					fmt.Printf("due %s  %s\n", t.DueDate, t.Name)
				}
			}
			return nil
		},
	}
}
