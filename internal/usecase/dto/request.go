package dto

// SelectRequest - намерение выбрать винодельню по клику на карте
type SelectRequest struct {
	URL string `json:"url" validate:"required,max=2048"`
	ID  string `json:"id" validate:"winery_id,max=128"`
}

// ClearRequest - намерение закрыть поверхность и снять выбор
type ClearRequest struct {
	URL string `json:"url" validate:"required,max=2048"`
}

// SelectionQuery - параметры чтения выбранной записи.
// From - ширина, при которой клиент рисовал поверхность до ресайза (0 - не было ресайза).
type SelectionQuery struct {
	ID    string `query:"winery" validate:"max=128"`
	Width int    `query:"width" validate:"min=0,max=20000"`
	From  int    `query:"from" validate:"min=0,max=20000"`
}
