package dto

type ProcedureListResponse struct {
	Procedures []string `json:"procedures"`
	Total      int      `json:"total"`
}

type ProviderListResponse struct {
	Providers []string `json:"providers"`
	Total     int      `json:"total"`
}

type MitigatingFactorResponse struct {
	Name         string  `json:"name"`
	Value        float64 `json:"value"`
	IsMultiplier bool    `json:"is_multiplier"`
}

type MitigatingFactorListResponse struct {
	Factors []MitigatingFactorResponse `json:"factors"`
	Total   int                        `json:"total"`
}

type CatalogReloadResponse struct {
	Procedures int `json:"procedures"`
	Providers  int `json:"providers"`
	Factors    int `json:"factors"`
}
