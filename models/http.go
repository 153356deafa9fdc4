package models

// CreateItemRequest is the JSON body of POST /api/vault.
type CreateItemRequest struct {
	Label    string    `json:"label"`
	Category Category  `json:"category"`
	Data     VaultData `json:"data"`
}

// UpdateItemRequest is the JSON body of PATCH /api/vault/{id}.
// Nil fields are left unchanged.
type UpdateItemRequest struct {
	Label    *string    `json:"label,omitempty"`
	Category *Category  `json:"category,omitempty"`
	Data     *VaultData `json:"data,omitempty"`
}

// PinRequest is the JSON body of POST and PUT /api/vault/pin.
type PinRequest struct {
	Pin string `json:"pin"`
}

// PinStatusResponse is the JSON body returned by GET /api/vault/pin.
type PinStatusResponse struct {
	HasPin bool `json:"hasPin"`
}

// PinVerifyResponse is the JSON body returned by PUT /api/vault/pin.
type PinVerifyResponse struct {
	Valid bool `json:"valid"`
}

// SuccessResponse is the JSON body returned by operations that carry no
// payload, e.g. DELETE /api/vault/{id}.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse is the JSON error body returned on any non-2xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}
