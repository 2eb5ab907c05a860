// FILE: djangoauth/cmd/djangoauth/main.go

// Command djangoauth encodes and verifies Django-style password hashes
// interactively.
//
// Usage:
//
//	djangoauth encode
//	djangoauth verify
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/lixenwraith/djangoauth"
)

var stdin = bufio.NewReader(os.Stdin)

func main() {
	if len(os.Args) != 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "encode":
		runEncode()
	case "verify":
		runVerify()
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: djangoauth encode|verify")
	fmt.Fprintln(os.Stderr, "  encode  prompt for a password, salt, and iteration count and print the hash")
	fmt.Fprintln(os.Stderr, "  verify  prompt for a password and a stored hash and report whether they match")
}

func runEncode() {
	password := promptPassword("Input password: ")
	salt := promptLine("Input salt: ")
	iterations := promptIterations("Input number of iterations (empty for default): ")

	encoded, err := djangoauth.EncodePassword(password, salt, djangoauth.WithIterations(iterations))
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Encoded password: %s\n", encoded)
}

func runVerify() {
	password := promptPassword("Input password: ")
	encoded := promptLine("Input Django stored password: ")

	ok, err := djangoauth.Authenticate(password, encoded)
	if err != nil {
		fmt.Fprintf(os.Stderr, "verification error: %v\n", err)
		os.Exit(1)
	}

	if !ok {
		fmt.Println("Password verification failed!")
		os.Exit(1)
	}
	fmt.Println("Password verified!")
}

// promptPassword reads a password without echoing when stdin is a terminal
func promptPassword(prompt string) string {
	fmt.Print(prompt)

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return promptRest()
	}

	password, err := term.ReadPassword(fd)
	fmt.Println("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read password: %v\n", err)
		os.Exit(1)
	}
	return string(password)
}

func promptLine(prompt string) string {
	fmt.Print(prompt)
	return promptRest()
}

func promptRest() string {
	line, err := stdin.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintf(os.Stderr, "failed to read from stdin: %v\n", err)
		os.Exit(1)
	}
	return strings.TrimRight(line, "\r\n")
}

// promptIterations re-asks until the input parses; empty input means default
func promptIterations(prompt string) uint32 {
	for {
		text := promptLine(prompt)
		if text == "" {
			return 0
		}

		n, err := strconv.ParseUint(text, 10, 32)
		if err != nil {
			fmt.Println("Please input a number, try again!")
			continue
		}
		return uint32(n)
	}
}
