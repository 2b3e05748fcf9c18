package printer

import (
	"bytes"
	"fmt"
	"net"
	"os"
	"sync"
	"time"
)

// Printer sends raw ESC/POS data to a receipt printer.
type Printer interface {
	Print(data []byte) error
	IsConnected() bool
}

// Config selects and addresses the printer transport.
type Config struct {
	Type    string // "usb", "network" or "none"
	USBPath string // e.g. /dev/usb/lp0
	Address string // e.g. 192.168.1.100:9100
	Timeout time.Duration
}

// New creates the Printer described by cfg.
func New(cfg Config) (Printer, error) {
	switch cfg.Type {
	case "usb":
		if cfg.USBPath == "" {
			return nil, fmt.Errorf("printer: USB path is required for USB printer type")
		}
		return &usbPrinter{path: cfg.USBPath}, nil
	case "network":
		if cfg.Address == "" {
			return nil, fmt.Errorf("printer: address is required for network printer type")
		}
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 5 * time.Second
		}
		return &networkPrinter{address: cfg.Address, timeout: timeout}, nil
	case "none", "":
		return Null(), nil
	default:
		return nil, fmt.Errorf("printer: unknown printer type %q (use usb, network, or none)", cfg.Type)
	}
}

// usbPrinter writes to a character device, opening it per job.
type usbPrinter struct {
	path string
}

func (p *usbPrinter) Print(data []byte) error {
	f, err := os.OpenFile(p.path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("printer: failed to open USB device %s: %w", p.path, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("printer: failed to write to USB device %s: %w", p.path, err)
	}
	return nil
}

func (p *usbPrinter) IsConnected() bool {
	_, err := os.Stat(p.path)
	return err == nil
}

// networkPrinter dials a raw TCP port (usually 9100) per job.
type networkPrinter struct {
	address string
	timeout time.Duration
}

func (p *networkPrinter) Print(data []byte) error {
	conn, err := net.DialTimeout("tcp", p.address, p.timeout)
	if err != nil {
		return fmt.Errorf("printer: failed to connect to %s: %w", p.address, err)
	}
	defer conn.Close()

	_ = conn.SetWriteDeadline(time.Now().Add(2 * p.timeout))

	if _, err := conn.Write(data); err != nil {
		return fmt.Errorf("printer: failed to write to %s: %w", p.address, err)
	}
	return nil
}

func (p *networkPrinter) IsConnected() bool {
	conn, err := net.DialTimeout("tcp", p.address, p.timeout)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

type nullPrinter struct{}

// Null returns a printer that accepts and drops every job.
func Null() Printer {
	return nullPrinter{}
}

func (nullPrinter) Print([]byte) error { return nil }
func (nullPrinter) IsConnected() bool  { return false }

// Recorder keeps printed jobs in memory. Useful as a stand-in in tests and
// for previewing receipts.
type Recorder struct {
	mu   sync.Mutex
	jobs [][]byte
	Err  error
}

func (r *Recorder) Print(data []byte) error {
	if r.Err != nil {
		return r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs = append(r.jobs, bytes.Clone(data))
	return nil
}

func (r *Recorder) IsConnected() bool { return r.Err == nil }

// Jobs returns a copy of every recorded job.
func (r *Recorder) Jobs() [][]byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([][]byte, len(r.jobs))
	copy(out, r.jobs)
	return out
}
