package dto

type ToggleFavoriteRequest struct {
	Id string `json:"id" validate:"required"`
}

type FavoritesResponse struct {
	Ids []string `json:"ids"`
}
