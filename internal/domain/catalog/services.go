package catalog

// Catálogo de serviços com preço em reais inteiros. O front usava essa
// tabela hard-coded; aqui ela vira a fonte única exposta em /api/services.
type Service struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

var Services = []Service{
	{Name: "Corte Social", Price: 90},
	{Name: "Corte Moderno", Price: 110},
	{Name: "Barba Tradicional", Price: 70},
	{Name: "Combo Corte + Barba", Price: 150},
}
