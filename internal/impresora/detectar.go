package impresora

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Detectada describes one printer found during a scan.
type Detectada struct {
	Tipo   string `json:"type"`
	IP     string `json:"ip,omitempty"`
	Puerto int    `json:"port,omitempty"`
	Nombre string `json:"name"`
}

// DetectarRed probes candidate hosts for a JetDirect listener on :9100
// and delivers either the result list or an error to cb, fire-and-forget
// on its own goroutine so the interface never waits on the scan. When
// ctx expires or is cancelled the pending dials abort and cb receives
// the context error instead of a partial list.
func DetectarRed(ctx context.Context, hosts []string, cb func([]Detectada, error)) {
	go func() {
		var (
			mu          sync.Mutex
			encontradas []Detectada
			wg          sync.WaitGroup
		)

		for _, host := range hosts {
			wg.Add(1)
			go func(host string) {
				defer wg.Done()

				d := net.Dialer{Timeout: 2 * time.Second}
				conn, err := d.DialContext(ctx, "tcp", net.JoinHostPort(host, "9100"))
				if err != nil {
					return
				}
				conn.Close()

				mu.Lock()
				encontradas = append(encontradas, Detectada{
					Tipo:   TipoRed,
					IP:     host,
					Puerto: 9100,
					Nombre: fmt.Sprintf("Impresora de red %s", host),
				})
				mu.Unlock()
			}(host)
		}

		wg.Wait()
		if err := ctx.Err(); err != nil {
			cb(nil, err)
			return
		}
		log.Info().Int("encontradas", len(encontradas)).Int("candidatos", len(hosts)).Msg("detección de impresoras terminada")
		cb(encontradas, nil)
	}()
}
