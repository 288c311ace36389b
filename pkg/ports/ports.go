// Package ports localiza un puerto TCP libre para las herramientas
// locales que no tienen puerto fijo asignado (p. ej. el refresher).
package ports

import (
	"fmt"
	"net"
)

// FindFree prueba secuencialmente hasta attempts puertos a partir de
// start y devuelve el primero libre. El sondeo es un bind real que se
// cierra de inmediato; no hay reintentos ni backoff.
func FindFree(start, attempts int) (int, error) {
	if attempts < 1 {
		attempts = 1
	}
	for port := start; port < start+attempts; port++ {
		ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
		if err != nil {
			continue
		}
		ln.Close()
		return port, nil
	}
	return 0, fmt.Errorf("sin puerto libre en [%d,%d]", start, start+attempts-1)
}
