package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"irqscope/host/serial"
)

var (
	device = flag.String("device", "/dev/ttyACM0", "Serial device path")
	baud   = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
	only   = flag.Bool("irq-only", false, "Show only [IRQ] trace and fault lines")
)

func main() {
	flag.Parse()

	fmt.Println("irqmon - interrupt trace and fault monitor")
	fmt.Printf("Listening on %s...\n\n", *device)

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud
	cfg.ReadTimeout = 0 // blocking reads

	port, err := serial.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()

	scanner := bufio.NewScanner(port)
	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case strings.Contains(line, "UNHANDLED!"), strings.Contains(line, "unhandled interrupt"):
			fmt.Printf("!! %s\n", line)
		case strings.HasPrefix(line, "[IRQ]"):
			fmt.Println(line)
		default:
			if !*only {
				fmt.Println(line)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading serial: %v\n", err)
		os.Exit(1)
	}
}
