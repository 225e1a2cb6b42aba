// credkey generates the age identity the server uses to seal calendar
// credentials at rest. The identity goes into CREDENTIALS_AGE_IDENTITY; the
// recipient is printed for reference only.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/AbbasJay/be-well-web-sub000/internal/sealed"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	var outPath string
	var envFormat bool

	flagSet := pflag.NewFlagSet("credkey", pflag.ContinueOnError)
	flagSet.StringVarP(&outPath, "output", "o", "", "write the identity to this file (mode 0600) instead of stdout")
	flagSet.BoolVar(&envFormat, "env", false, "print as CREDENTIALS_AGE_IDENTITY=... for a .env file")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	identity, recipient, err := sealed.GenerateIdentity()
	if err != nil {
		return err
	}

	line := identity
	if envFormat {
		line = "CREDENTIALS_AGE_IDENTITY=" + identity
	}

	if outPath != "" {
		if err := os.WriteFile(outPath, []byte(line+"\n"), 0o600); err != nil {
			return fmt.Errorf("writing identity: %w", err)
		}
		fmt.Fprintf(stdout, "identity written to %s\n", outPath)
	} else {
		fmt.Fprintln(stdout, line)
	}

	fmt.Fprintf(stdout, "# recipient: %s\n", recipient)

	return nil
}
