package dto

type CityResponse struct {
	Key            string  `json:"key"`
	Name           string  `json:"name"`
	UTCOffsetHours int     `json:"utc_offset_hours"`
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
}

type ListCitiesResponse struct {
	Cities []CityResponse `json:"cities"`
}

type SignResponse struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

type PlanetInfoResponse struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

type TablesResponse struct {
	Lang    string               `json:"lang"`
	Signs   []SignResponse       `json:"signs"`
	Planets []PlanetInfoResponse `json:"planets"`
}
