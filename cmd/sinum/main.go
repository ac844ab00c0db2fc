// Command sinum converts its arguments to integers, the way a flag using
// the numparse package would.
//
//	$ sinum -bits 32 -unsigned 4k7 1.5M
//	4k7	4700
//	1.5M	1500000
//
//	$ sinum -mode hex -unsigned -max 0xff 0x7f 0x100
//	0x7f	127
//	sinum: "0x100": exceeds maximum of 255
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/aerth/sinum/flagpkg"
	"github.com/aerth/sinum/ncode"
	"github.com/aerth/sinum/numparse"
	"github.com/aerth/sinum/superlog"
	"github.com/coreos/go-systemd/journal"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	mode     string
	bits     int
	unsigned bool
	min, max string
	echo     bool
	log      superlog.Config
}

// convertFunc returns the decimal form of a parsed argument
type convertFunc func(string) (string, error)

func run(args []string, stdout, stderr io.Writer) int {
	var o options
	fs := flag.NewFlagSet("sinum", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: sinum [flags] value...\n")
		fs.PrintDefaults()
	}
	fs.StringVar(&o.mode, "mode", "si", "parser: si, dec, hex or bin")
	flagpkg.Func(fs, &o.bits, "bits", 64, "integer width: 8, 16, 32 or 64", parseBits)
	fs.BoolVar(&o.unsigned, "unsigned", false, "parse unsigned integers (required for hex and bin)")
	fs.StringVar(&o.min, "min", "", "inclusive lower bound, written like the values")
	fs.StringVar(&o.max, "max", "", "inclusive upper bound, written like the values")
	flagpkg.InverseBool(fs, &o.echo, "no-input", true, "print only the converted values")
	fs.BoolVar(&o.log.Syslog, "syslog", false, "log errors to syslog")
	fs.StringVar(&o.log.RemoteSyslog, "remote-syslog", "", "log errors to remote syslog `host:port` (udp)")
	fs.BoolVar(&o.log.Journal, "journal", false, "log errors to the systemd journal")
	flagpkg.Func(fs, &o.log.Priority, "priority", journal.PriErr, "log priority, 0 (emerg) to 7 (debug)", func(s string) (superlog.Priority, error) {
		return numparse.NumberRange(s, journal.PriEmerg, journal.PriDebug)
	})
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	o.log.Stderr = stderr
	w, err := superlog.New(o.log)
	logger := log.New(w, "sinum: ", 0)
	if err != nil {
		logger.Printf("%v", err)
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}
	convert, err := converter(o)
	if err != nil {
		logger.Printf("%v", err)
		return 2
	}
	status := 0
	for _, arg := range fs.Args() {
		out, err := convert(arg)
		if err != nil {
			logger.Printf("%q: %v", arg, err)
			status = 1
			continue
		}
		if o.echo {
			fmt.Fprintf(stdout, "%s\t%s\n", arg, out)
		} else {
			fmt.Fprintln(stdout, out)
		}
	}
	return status
}

func parseBits(s string) (int, error) {
	n, err := numparse.NumberRange(s, 8, 64)
	if err != nil {
		return 0, err
	}
	if n&(n-1) != 0 {
		return 0, errors.Errorf("%d is not 8, 16, 32 or 64", n)
	}
	return n, nil
}

func converter(o options) (convertFunc, error) {
	if o.unsigned {
		switch o.bits {
		case 8:
			return unsignedConverter[uint8](o)
		case 16:
			return unsignedConverter[uint16](o)
		case 32:
			return unsignedConverter[uint32](o)
		default:
			return unsignedConverter[uint64](o)
		}
	}
	switch o.bits {
	case 8:
		return signedConverter[int8](o)
	case 16:
		return signedConverter[int16](o)
	case 32:
		return signedConverter[int32](o)
	default:
		return signedConverter[int64](o)
	}
}

func signedConverter[T constraints.Signed](o options) (convertFunc, error) {
	switch o.mode {
	case "si":
		return bounded(numparse.SINumber[T], o)
	case "dec":
		return bounded(decimal[T], o)
	case "hex", "bin":
		return nil, errors.Errorf("-mode %s needs -unsigned", o.mode)
	}
	return nil, errors.Errorf("unknown -mode %q", o.mode)
}

func unsignedConverter[T constraints.Unsigned](o options) (convertFunc, error) {
	switch o.mode {
	case "si":
		return bounded(numparse.SINumber[T], o)
	case "dec":
		return bounded(decimal[T], o)
	case "hex":
		return bounded(numparse.MaybeHex[T], o)
	case "bin":
		return bounded(numparse.MaybeBin[T], o)
	}
	return nil, errors.Errorf("unknown -mode %q", o.mode)
}

func decimal[T constraints.Integer](s string) (T, error) {
	return numparse.NumberRange(s, ncode.MinOf[T](), ncode.MaxOf[T]())
}

// bounded parses -min and -max with parse, and range checks every value
func bounded[T constraints.Integer](parse func(string) (T, error), o options) (convertFunc, error) {
	lo, hi := ncode.MinOf[T](), ncode.MaxOf[T]()
	var err error
	if o.min != "" {
		if lo, err = parse(o.min); err != nil {
			return nil, errors.Wrapf(err, "-min %q", o.min)
		}
	}
	if o.max != "" {
		if hi, err = parse(o.max); err != nil {
			return nil, errors.Wrapf(err, "-max %q", o.max)
		}
	}
	if lo > hi {
		return nil, errors.Errorf("-min %v exceeds -max %v", lo, hi)
	}
	return func(s string) (string, error) {
		n, err := parse(s)
		if err != nil {
			return "", err
		}
		if n, err = numparse.CheckRange(n, lo, hi); err != nil {
			return "", err
		}
		return fmt.Sprint(n), nil
	}, nil
}
