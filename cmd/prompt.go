package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"squarify/internal/config"
)

// promptSize asks for the target size until a valid value or a blank line
// (meaning the default) is entered.
func promptSize(r io.Reader, w io.Writer) int {
	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprintf(w, "Enter the desired size (default is %d): ", config.DefaultSize)
		if !scanner.Scan() {
			return config.DefaultSize
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			return config.DefaultSize
		}
		size, err := strconv.Atoi(input)
		if err != nil {
			fmt.Fprintln(w, "Invalid input. Please enter a number.")
			continue
		}
		if size >= config.MinSize && size <= config.MaxSize {
			return size
		}
		fmt.Fprintf(w, "Please enter a positive integer between %d-%d\n", config.MinSize, config.MaxSize)
	}
}

// promptExtension asks for the output extension until a valid one, the
// keep-original sentinel, or a blank line (meaning the sentinel) is entered.
func promptExtension(r io.Reader, w io.Writer) string {
	choices := strings.Join(config.OutputExtensions, ", ")
	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprintf(w, "Enter the desired output file extension (%s), or '%s' to keep the original extension (default is '%s'): ",
			choices, config.KeepExtension, config.KeepExtension)
		if !scanner.Scan() {
			return config.KeepExtension
		}
		input := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if input == "" || input == config.KeepExtension {
			return config.KeepExtension
		}
		for _, ext := range config.OutputExtensions {
			if input == ext {
				return input
			}
		}
		fmt.Fprintln(w, "Invalid extension. Please choose from: "+choices)
	}
}
