// Package main provides a CLI that derives PBKDF2-SHA512 password hashes and
// salts in the formats stored on a storefront User, for seeding test accounts.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/phrazzld/storefront-kit/internal/field"
	"github.com/phrazzld/storefront-kit/internal/password"
)

func main() {
	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash-generator [flags] password...",
		Short: "Derives password hashes, salts and auth tokens for User records",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			iterations, _ := cmd.Flags().GetInt("iterations")
			salt, _ := cmd.Flags().GetString("salt")
			withToken, _ := cmd.Flags().GetBool("auth-token")

			if salt != "" {
				var err error
				if salt, err = field.Salt("salt", salt); err != nil {
					return err
				}
			}

			hasher := password.NewHasher(iterations)
			for _, plaintext := range args {
				if err := writeCredentials(out, hasher, plaintext, salt, withToken); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().Int("iterations", password.DefaultIterations, "PBKDF2 iteration count")
	cmd.Flags().String("salt", "", "hex salt to reuse instead of generating one per password")
	cmd.Flags().Bool("auth-token", false, "also generate a pending activation token")

	return cmd
}

// credentialHasher derives hashes and can check them; *password.Hasher is one.
type credentialHasher interface {
	Hash(password, salt string) (string, error)
	password.Verifier
}

func writeCredentials(out io.Writer, hasher credentialHasher, plaintext, salt string, withToken bool) error {
	if salt == "" {
		var err error
		if salt, err = password.NewSalt(); err != nil {
			return err
		}
	}

	hash, err := hasher.Hash(plaintext, salt)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if _, err := field.PasswordHash("password", hash); err != nil {
		return err
	}
	if err := hasher.Compare(hash, salt, plaintext); err != nil {
		return fmt.Errorf("derived hash failed verification: %w", err)
	}

	fmt.Fprintf(out, "Password: %s\nHash: %s\nSalt: %s\n", plaintext, hash, salt)
	if withToken {
		token, err := password.NewAuthToken()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Auth token: %s\n", token)
	}
	fmt.Fprintln(out)
	return nil
}
