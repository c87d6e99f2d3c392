package company

type CompanyResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	CNPJ string `json:"cnpj"`
}

func ToResponse(c Company) CompanyResponse {
	return CompanyResponse{ID: c.ID, Name: c.Name, CNPJ: c.CNPJ}
}
