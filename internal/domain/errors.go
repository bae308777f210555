package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// ErrStockNegativo: una salida o ajuste produciría stock < 0. El movimiento
	// se rechaza completo y el producto queda sin modificar.
	ErrStockNegativo = errors.New("el stock resultante no puede ser negativo")

	// ErrMotivoRequerido: los ajustes de inventario exigen un motivo no vacío.
	ErrMotivoRequerido = errors.New("el motivo es obligatorio para ajustes")
)
