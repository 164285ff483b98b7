package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"allserve/internal/errors"
)

// Supported subcommands:
// - token: Mint a development bearer token signed with auth.jwtSecret
// - seed:  Validate a memory store fixture file

func main() {
	tokenCmd := flag.NewFlagSet("token", flag.ExitOnError)
	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)

	tokenUID := tokenCmd.String("uid", "", "uid placed in the token subject")
	tokenTTL := tokenCmd.Duration("ttl", 24*time.Hour, "Token lifetime")
	tokenSecret := tokenCmd.String("secret", "", "Signing secret, defaults to auth.jwtSecret from the config file")

	seedPath := seedCmd.String("file", "config/seed.yaml", "Fixture file to validate")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	flags := ctlFlags{
		Token: tokenFlags{
			cmd:    tokenCmd,
			uid:    tokenUID,
			ttl:    tokenTTL,
			secret: tokenSecret,
		},
		Seed: seedFlags{
			cmd:  seedCmd,
			file: seedPath,
		},
	}

	if err := runSubcommand(&flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type ctlFlags struct {
	Token tokenFlags
	Seed  seedFlags
}

type tokenFlags struct {
	cmd    *flag.FlagSet
	uid    *string
	ttl    *time.Duration
	secret *string
}

type seedFlags struct {
	cmd  *flag.FlagSet
	file *string
}

func runSubcommand(flags *ctlFlags) error {
	switch os.Args[1] {
	case "token":
		if err := flags.Token.cmd.Parse(os.Args[2:]); err != nil {
			return errors.Wrap(err, "failed to parse token flags")
		}

		return runToken(os.Stdout, *flags.Token.uid, *flags.Token.ttl, *flags.Token.secret)
	case "seed":
		if err := flags.Seed.cmd.Parse(os.Args[2:]); err != nil {
			return errors.Wrap(err, "failed to parse seed flags")
		}

		return runSeed(os.Stdout, *flags.Seed.file)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func printUsage() {
	fmt.Println("Usage: allservectl <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  token   Mint a development bearer token")
	fmt.Println("  seed    Validate a memory store fixture file")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  allservectl token -uid admin-1 -ttl 1h")
	fmt.Println("  allservectl seed -file config/seed.yaml")
}
