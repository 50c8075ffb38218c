package dto

// AddListItemRequest body para POST /api/lists/:list.
type AddListItemRequest struct {
	Name string `json:"name"`
}

// ListResponse contenido de una lista de referencia.
type ListResponse struct {
	List  string   `json:"list"`
	Items []string `json:"items"`
}
