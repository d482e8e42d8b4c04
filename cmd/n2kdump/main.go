// Command n2kdump reads NMEA2000 messages off a CAN bus (SocketCAN or an
// Actisense NGT-1 gateway) and prints each decoded PGN as JSON.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aldas/go-n2k"
	"github.com/aldas/go-n2k/actisense"
	"github.com/aldas/go-n2k/gen"
	"github.com/aldas/go-n2k/socketcan"
)

func main() {
	transport := flag.String("transport", "socketcan", "which CAN transport to use (socketcan, actisense)")
	deviceAddr := flag.String("device", "can0", "socketcan interface name, or serial port path for actisense")
	baudRate := flag.Int("baud", 115200, "actisense device baud rate")
	ownAddress := flag.Uint("address", 0xf9, "this node's own source address, used when sending")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	can, closeFn, err := openTransport(*transport, *deviceAddr, *baudRate)
	if err != nil {
		log.Fatal(err)
	}
	defer closeFn()

	bus := n2k.NewBus[gen.Pgn](can, gen.Registry{}, uint8(*ownAddress))

	fmt.Printf("# reading %s via %s\n", *deviceAddr, *transport)
	enc := json.NewEncoder(os.Stdout)

	errorStreak := 0
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		message, ok, err := bus.Receive()
		if err != nil {
			var busErr *n2k.BusError
			if errors.As(err, &busErr) && busErr.Kind == n2k.BusErrorCan {
				log.Fatal(err)
			}
			errorStreak++
			fmt.Fprintf(os.Stderr, "# decode error: %v\n", err)
			if errorStreak > 50 {
				log.Fatal("too many consecutive decode errors, giving up")
			}
			continue
		}
		errorStreak = 0
		if !ok {
			time.Sleep(5 * time.Millisecond)
			continue
		}

		if err := enc.Encode(message); err != nil {
			fmt.Fprintf(os.Stderr, "# json encode error: %v\n", err)
		}
	}
}

func openTransport(transport, deviceAddr string, baud int) (n2k.ReceiverTransmitter, func(), error) {
	switch transport {
	case "socketcan":
		dev := socketcan.NewDevice(deviceAddr)
		if err := dev.Initialize(); err != nil {
			return nil, nil, fmt.Errorf("n2kdump: opening socketcan device: %w", err)
		}
		return dev, func() { _ = dev.Close() }, nil
	case "actisense":
		port, err := actisense.OpenSerial(deviceAddr, baud)
		if err != nil {
			return nil, nil, fmt.Errorf("n2kdump: opening actisense serial port: %w", err)
		}
		ngt1 := actisense.NewNGT1(port)
		if err := ngt1.Initialize(); err != nil {
			return nil, nil, fmt.Errorf("n2kdump: initializing actisense gateway: %w", err)
		}
		return ngt1, func() { _ = ngt1.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("n2kdump: unknown transport %q", transport)
	}
}
