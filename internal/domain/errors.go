package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrDataLoad       = errors.New("carga de datos base fallida")
	ErrRefreshRunning = errors.New("refresco ya en ejecución")
)
