package catalog

import "github.com/conecta-coleta/internal/domain"

// FallbackRouteID - маршрут, используемый когда ни база, ни Mapbox недоступны
const FallbackRouteID = "recife-centro"

// defaultPoints - справочник пунктов приёма Recife
var defaultPoints = []domain.DisposalPoint{
	{
		ID:           "ecoponto-imbiribeira",
		Category:     domain.CategoryEcoponto,
		Title:        "Ecoponto Imbiribeira",
		Address:      "Av. Mascarenhas de Morais, 1200 - Imbiribeira, Recife - PE",
		OpeningHours: "Seg a Sáb, 7h às 19h",
		Lat:          -8.1275,
		Lon:          -34.9020,
		Materials:    []string{"Entulho", "Madeira", "Móveis", "Podas"},
	},
	{
		ID:           "ecoponto-torre",
		Category:     domain.CategoryEcoponto,
		Title:        "Ecoponto Torre",
		Address:      "Rua José Bonifácio, 400 - Torre, Recife - PE",
		OpeningHours: "Seg a Sáb, 7h às 19h",
		Lat:          -8.0455,
		Lon:          -34.9105,
		Materials:    []string{"Entulho", "Eletrônicos", "Móveis"},
	},
	{
		ID:           "ecoponto-casa-amarela",
		Category:     domain.CategoryEcoponto,
		Title:        "Ecoponto Casa Amarela",
		Address:      "Estrada do Arraial, 3000 - Casa Amarela, Recife - PE",
		OpeningHours: "Seg a Sáb, 7h às 19h",
		Lat:          -8.0262,
		Lon:          -34.9166,
		Materials:    []string{"Entulho", "Podas", "Pneus"},
	},
	{
		ID:           "pev-boa-vista",
		Category:     domain.CategoryReciclagem,
		Title:        "PEV Boa Vista",
		Address:      "Rua da Imperatriz, 150 - Boa Vista, Recife - PE",
		OpeningHours: "Todos os dias, 8h às 22h",
		Lat:          -8.0630,
		Lon:          -34.8890,
		Materials:    []string{"Papel", "Plástico", "Vidro", "Metal"},
	},
	{
		ID:           "pev-espinheiro",
		Category:     domain.CategoryReciclagem,
		Title:        "PEV Espinheiro",
		Address:      "Av. Conselheiro Rosa e Silva, 800 - Espinheiro, Recife - PE",
		OpeningHours: "Todos os dias, 8h às 22h",
		Lat:          -8.0420,
		Lon:          -34.8940,
		Materials:    []string{"Óleo de cozinha", "Pilhas", "Baterias"},
	},
	{
		ID:           "pev-boa-viagem",
		Category:     domain.CategoryReciclagem,
		Title:        "PEV Boa Viagem",
		Address:      "Av. Conselheiro Aguiar, 2500 - Boa Viagem, Recife - PE",
		OpeningHours: "Todos os dias, 9h às 21h",
		Lat:          -8.1130,
		Lon:          -34.8940,
		Materials:    []string{"Papel", "Plástico", "Vidro", "Eletrônicos"},
	},
}

// fallbackRoute - фиксированная полилиния по центру Recife
var fallbackRoute = domain.Route{
	ID:     FallbackRouteID,
	Name:   "Coleta Centro - Boa Viagem",
	Source: domain.RouteSourceFallback,
	Points: []domain.Point{
		{Lat: -8.0631, Lon: -34.8711},
		{Lat: -8.0660, Lon: -34.8780},
		{Lat: -8.0712, Lon: -34.8825},
		{Lat: -8.0785, Lon: -34.8870},
		{Lat: -8.0861, Lon: -34.8905},
		{Lat: -8.0950, Lon: -34.8930},
		{Lat: -8.1042, Lon: -34.8952},
		{Lat: -8.1130, Lon: -34.8940},
		{Lat: -8.1205, Lon: -34.8975},
		{Lat: -8.1275, Lon: -34.9020},
	},
}
