// Command hash-password prints bcrypt hashes for seeding users directly into
// the database. Passwords are taken from the arguments, or read one per line
// from stdin when no arguments are given.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/phrazzld/tasks-api/internal/service/auth"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cost := flag.Int("cost", bcrypt.DefaultCost, "bcrypt cost factor")
	flag.Parse()

	if err := run(flag.Args(), os.Stdin, os.Stdout, *cost); err != nil {
		fmt.Fprintf(os.Stderr, "hash-password: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, out io.Writer, cost int) error {
	hasher := auth.NewBcryptHasher(cost)

	passwords := args
	if len(passwords) == 0 {
		scanner := bufio.NewScanner(stdin)
		for scanner.Scan() {
			passwords = append(passwords, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read passwords: %w", err)
		}
	}

	for i, password := range passwords {
		if err := domain.ValidatePassword(password); err != nil {
			return fmt.Errorf("password %d: %w", i+1, err)
		}
		hash, err := hasher.Hash(password)
		if err != nil {
			return fmt.Errorf("password %d: %w", i+1, err)
		}
		if _, err := fmt.Fprintln(out, hash); err != nil {
			return err
		}
	}
	return nil
}
