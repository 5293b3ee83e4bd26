package dto

// BootstrapResponse is the subset of the FPL bootstrap-static payload used
// for transfer tracking.
type BootstrapResponse struct {
	Elements []Element `json:"elements"`
}

// Element is one player entry in the bootstrap-static payload. NowCost is in
// tenths of £m as served by the API.
type Element struct {
	ID                int    `json:"id"`
	FirstName         string `json:"first_name"`
	SecondName        string `json:"second_name"`
	NowCost           int    `json:"now_cost"`
	TransfersInEvent  int    `json:"transfers_in_event"`
	TransfersOutEvent int    `json:"transfers_out_event"`
	SelectedByPercent string `json:"selected_by_percent"`
}
