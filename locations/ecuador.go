package locations

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Static province and city catalog for Ecuador. Queried by name only, never
// mutated at runtime.

var provinces = []string{
	"Azuay",
	"Bolívar",
	"Cañar",
	"Carchi",
	"Chimborazo",
	"Cotopaxi",
	"El Oro",
	"Esmeraldas",
	"Galápagos",
	"Guayas",
	"Imbabura",
	"Loja",
	"Los Ríos",
	"Manabí",
	"Morona Santiago",
	"Napo",
	"Orellana",
	"Pastaza",
	"Pichincha",
	"Santa Elena",
	"Santo Domingo de los Tsáchilas",
	"Sucumbíos",
	"Tungurahua",
	"Zamora Chinchipe",
}

var citiesByProvince = map[string][]string{
	"Azuay": {"Cuenca", "Gualaceo", "Paute", "Sigsig", "Girón", "San Fernando", "Santa Isabel", "Pucará", "Nabón", "Oña", "Chordeleg", "El Pan", "Sevilla de Oro", "Guachapala", "Camilo Ponce Enríquez"},
	"Bolívar": {"Guaranda", "Chillanes", "Chimbo", "Echeandía", "San Miguel", "Caluma", "Las Naves"},
	"Cañar": {"Azogues", "Biblián", "Cañar", "La Troncal", "El Tambo", "Déleg", "Suscal"},
	"Carchi": {"Tulcán", "Bolívar", "Espejo", "Mira", "Montúfar", "San Pedro de Huaca"},
	"Chimborazo": {"Riobamba", "Alausí", "Colta", "Chambo", "Chunchi", "Cumandá", "Guamote", "Guano", "Pallatanga", "Penipe", "Pungala"},
	"Cotopaxi": {"Latacunga", "La Maná", "Pangua", "Pujilí", "Salcedo", "Saquisilí", "Sigchos"},
	"El Oro": {"Machala", "Arenillas", "Atahualpa", "Balsas", "Chilla", "El Guabo", "Huaquillas", "Marcabelí", "Pasaje", "Piñas", "Portovelo", "Santa Rosa", "Zaruma"},
	"Esmeraldas": {"Esmeraldas", "Eloy Alfaro", "Muisne", "Quinindé", "San Lorenzo", "Atacames", "Rioverde"},
	"Galápagos": {"Puerto Baquerizo Moreno", "Puerto Ayora", "Puerto Villamil"},
	"Guayas": {"Guayaquil", "Alfredo Baquerizo Moreno", "Balao", "Balzar", "Colimes", "Daule", "Durán", "El Empalme", "El Triunfo", "Milagro", "Naranjal", "Naranjito", "Nobol", "Palestina", "Pedro Carbo", "Samborondón", "Santa Lucía", "Salitre", "San Jacinto de Yaguachi", "Playas", "Simón Bolívar", "Coronel Marcelino Maridueña", "Lomas de Sargentillo", "Nueva Loja", "General Antonio Elizalde", "Isidro Ayora"},
	"Imbabura": {"Ibarra", "Antonio Ante", "Cotacachi", "Otavalo", "Pimampiro", "San Miguel de Urcuquí"},
	"Loja": {"Loja", "Calvas", "Catamayo", "Celica", "Chaguarpamba", "Espíndola", "Gonzanamá", "Macará", "Olmedo", "Paltas", "Pindal", "Puyango", "Quilanga", "Saraguro", "Sozoranga", "Zapotillo", "Pindal"},
	"Los Ríos": {"Babahoyo", "Baba", "Montalvo", "Puebloviejo", "Quevedo", "Urdaneta", "Ventanas", "Vínces", "Palenque", "Buena Fe", "Valencia", "Mocache", "Quinsaloma"},
	"Manabí": {"Portoviejo", "Bolívar", "Chone", "El Carmen", "Flavio Alfaro", "Jipijapa", "Junín", "Manta", "Montecristi", "Paján", "Pedernales", "Pichincha", "Puerto López", "Rocafuerte", "San Vicente", "Santa Ana", "Sucre", "Tosagua", "24 de Mayo", "Pedro Pablo Gómez", "Jama", "Jaramijó", "Olmedo"},
	"Morona Santiago": {"Macas", "Gualaquiza", "Limón Indanza", "Palora", "Santiago", "Sucúa", "Huamboya", "San Juan Bosco", "Taisha", "Logroño", "Pablo Sexto", "Tiwintza"},
	"Napo": {"Tena", "Archidona", "El Chaco", "Quijos", "Carlos Julio Arosemena Tola"},
	"Orellana": {"Francisco de Orellana", "Aguarico", "La Joya de los Sachas", "Loreto"},
	"Pastaza": {"Puyo", "Arajuno", "Mera", "Santa Clara"},
	"Pichincha": {"Quito", "Cayambe", "Mejía", "Pedro Moncayo", "Rumiñahui", "San Miguel de los Bancos", "Pedro Vicente Maldonado", "Puerto Quito", "Distrito Metropolitano de Quito"},
	"Santa Elena": {"Santa Elena", "La Libertad", "Salinas"},
	"Santo Domingo de los Tsáchilas": {"Santo Domingo", "La Concordia"},
	"Sucumbíos": {"Nueva Loja", "Cascales", "Cuyabeno", "Gonzalo Pizarro", "Lago Agrio", "Putumayo", "Shushufindi", "Sucumbíos"},
	"Tungurahua": {"Ambato", "Baños", "Cevallos", "Mocha", "Patate", "Quero", "San Pedro de Pelileo", "Santiago de Píllaro", "Tisaleo"},
	"Zamora Chinchipe": {"Zamora", "Chinchipe", "Nangaritza", "Palanda", "Pangui", "Yacuambi", "Yantzaza", "El Pangui"},
}
// Provinces returns the catalog's province names in display order.
func Provinces() []string {
	return append([]string(nil), provinces...)
}

// CitiesIn returns the cities of a province, empty for an unknown name.
func CitiesIn(province string) []string {
	return append([]string(nil), citiesByProvince[province]...)
}

// AllCities flattens the catalog in province order.
func AllCities() []string {
	var all []string
	for _, province := range provinces {
		all = append(all, citiesByProvince[province]...)
	}
	return all
}

// SearchCities filters the flattened city list by case-insensitive substring
// match. Diacritics are folded on both sides, so "canar" finds "Cañar".
func SearchCities(query string) []string {
	folded := fold(query)
	if folded == "" {
		return nil
	}
	var matches []string
	for _, city := range AllCities() {
		if strings.Contains(fold(city), folded) {
			matches = append(matches, city)
		}
	}
	return matches
}

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}
