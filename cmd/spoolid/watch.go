package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/handiism/spoolid/internal/display"
	"github.com/handiism/spoolid/internal/reader"
)

// stdinPort makes watch read reader output from stdin.
const stdinPort = "-"

func newWatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Resolve spools as an RFID reader reports them on a serial port",
		Long: `Listen to an RFID reader's serial console and print the display lines
for every tag it reports. Use --port - to read the same line format from
stdin.`,
		Example: `  spoolid watch --port /dev/ttyUSB0 --baud 115200`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			port, _ := cmd.Flags().GetString("port")
			if port == "" {
				port = a.settings.SerialPort
			}
			if port == "" {
				return errors.New("no serial port: pass --port or set serial_port")
			}
			baud, _ := cmd.Flags().GetInt("baud")
			if baud <= 0 {
				baud = a.settings.BaudRate
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			var src io.Reader = cmd.InOrStdin()
			if port != stdinPort {
				conn, err := reader.Open(port, baud)
				if err != nil {
					return err
				}
				defer conn.Close()
				// Closing the port unblocks a pending read.
				go func() {
					<-ctx.Done()
					conn.Close()
				}()
				src = conn
				a.log.Info("listening", zap.String("port", port), zap.Int("baud", baud))
			}

			return a.watch(ctx, src, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringP("port", "p", "", "serial device, or - for stdin (default serial_port)")
	cmd.Flags().IntP("baud", "b", 0, "baud rate (default baud_rate)")

	return cmd
}

// watch prints one resolved result per query until src ends or ctx is done.
func (a *app) watch(ctx context.Context, src io.Reader, out io.Writer) error {
	queries := make(chan display.Query, 16)
	errCh := make(chan error, 1)
	go func() {
		errCh <- reader.Listen(ctx, src, queries)
	}()

	for q := range queries {
		res := display.Resolve(a.catalog, q, a.settings.FallbackLabel)
		if res.Found {
			a.log.Debug("tag resolved", zap.String("query", q.String()), zap.String("material", res.Line1))
		} else {
			a.log.Warn("unknown tag", zap.String("query", q.String()))
		}
		fmt.Fprintf(out, "%s | %s | %s\n", q, res.Line1, res.Line2)
	}

	err := <-errCh
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
