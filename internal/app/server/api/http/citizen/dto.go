package citizen

import "ecitoyen/internal/domain/citizen"

type idInput struct {
	ID int64 `path:"id" minimum:"1" example:"1" doc:"Identifiant du citoyen"`
}

type createInput struct {
	Body citizen.CreateRequest
}

type updateInput struct {
	ID   int64 `path:"id" minimum:"1" example:"1" doc:"Identifiant du citoyen"`
	Body citizen.UpdateRequest
}

// deleted - пустые данные в ответе на удаление.
type deleted struct {
	ID int64 `json:"id"`
}
