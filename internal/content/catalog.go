package content

import (
	"sort"

	"github.com/example/adytum/pkg/models"
)

// builtinStations are the stations that ship with the application
var builtinStations = []models.DailyContent{
	{
		ID:         "day-1",
		DayNumber:  1,
		Theme:      "La Apertura de la Visión",
		Quote:      "El velo no se rompe, se desvanece ante la mirada atenta.",
		Koan:       "La luz no entra en ti, tú eres la luz que permite que el mundo entre.",
		Commentary: "Bienvenido al primer peldaño. Antes de mover el cuerpo, debemos entender la Realidad. Como enseño en el Capítulo 1.1, lo que llamas \"mundo\" es el reflejo de tu linterna interna. Si tu linterna está sucia, verás monstruos; si está limpia, verás el camino. Hoy solo observamos la luz.",
		FormalPractice: models.FormalPractice{
			Title:    "El Observador Silencioso",
			Duration: "15 min",
			Instructions: []string{
				"Busca un rincón en silencio.",
				"Observa un objeto simple sin ponerle nombre.",
				"Siente quién es el que mira detrás de tus ojos.",
				"Repite internamente: \"Yo soy la conciencia que observa\".",
			},
		},
		Meditation: models.Meditation{
			Title:    "El Despertar del Ojo del Alma",
			Guidance: "Visualiza un punto de luz dorada en tu pecho. Inhala luz, exhala duda. Deja que esa chispa se expanda hasta que tú seas la luz y la habitación sea solo un sueño dentro de ti.",
		},
		Wisdom: models.Wisdom{
			Advice:     "El neófito tiene prisa; el maestro disfruta de cada paso en el barro.",
			FableTitle: "El Espejo del Rey",
			Fable:      "Un rey mandó construir una sala de espejos. Un perro entró y murió de agotamiento intentando ladrarles a todos. Un sabio entró, sonrió, y vio mil sonrisas devolviéndole la paz.",
		},
		ReminderPractice: "Hoy, cada vez que mires a alguien, piensa: \"Es otro espejo de mi alma\".",
		Bridge: models.Bridge{
			Chapter: "Capítulo 1.1 y 1.2",
			Topics:  []string{"La Conciencia Pura", "La Ley del Espejo"},
		},
	},
	{
		ID:         "day-2",
		DayNumber:  2,
		Theme:      "El Campo de Posibilidades",
		Quote:      "Donde pones tu atención, pones tu vida.",
		Koan:       "El universo no te da lo que pides, te da lo que eres.",
		Commentary: "Siguiendo con el Capítulo 1.2, ahora que sabes que eres el observador, debes entender que el campo de conciencia es infinito. La repetición cristaliza el poder de moldear tu destino. No eres una hoja al viento, eres el viento mismo.",
		FormalPractice: models.FormalPractice{
			Title:    "Sembrando Intenciones",
			Duration: "10 min",
			Instructions: []string{
				"Escribe una sola intención para estos 21 días.",
				"Visualízala como algo que ya es realidad.",
				"Siente gratitud por el logro ya obtenido.",
				"Suéltalo al universo como una semilla fértil.",
			},
		},
		Meditation: models.Meditation{
			Title:    "La Expansión del Ser",
			Guidance: "Siente cómo los límites de tu piel se vuelven porosos. Eres aire, eres espacio. No hay frontera entre tú y el universo. Todo es posible en este vacío.",
		},
		Wisdom: models.Wisdom{
			Advice:     "La duda es un pensamiento; la voluntad es una decisión del espíritu.",
			FableTitle: "La Semilla de Bambú",
			Fable:      "El bambú no brota durante cinco años. Durante ese tiempo, crea raíces profundas. Al sexto año, crece 25 metros en seis semanas. Tu progreso invisible hoy es tu raíz mañana.",
		},
		ReminderPractice: "Cada vez que sientas una limitación hoy, di: \"Soy infinito\".",
		Bridge: models.Bridge{
			Chapter: "Capítulo 1.3",
			Topics:  []string{"El Campo Cuántico", "La Intención"},
		},
	},
	{
		ID:         "day-3",
		DayNumber:  3,
		Theme:      "El Océano y las Olas",
		Quote:      "Eres el agua que toma mil formas, nunca dejas de ser océano.",
		Koan:       "Ninguna tormenta puede mojar el fondo del mar.",
		Commentary: "Hoy nos adentramos en el Capítulo 1.4. Muchos alumnos se pierden en el drama de las \"olas\" (sus problemas diarios). Pero la ola no puede existir sin el océano. Tú eres la Vida misma expresándose como una ola individual. Cuando entiendes esto, el miedo a \"romper contra la orilla\" desaparece.",
		FormalPractice: models.FormalPractice{
			Title:    "Navegando el Sentir",
			Duration: "20 min",
			Instructions: []string{
				"Siéntate cómodamente y cierra los ojos.",
				"Nota un pensamiento o preocupación que tengas hoy.",
				"Míralo como una pequeña ola que sube y baja en la superficie.",
				"Lleva tu atención al fondo del océano, donde todo es quietud y silencio.",
				"Quédate en la profundidad mientras las olas juegan arriba.",
			},
		},
		Meditation: models.Meditation{
			Title:    "La Profundidad Abisal",
			Guidance: "Desciende mentalmente a lo más profundo del mar. Siente la presión reconfortante del silencio. Aquí arriba hay tormentas, pero aquí abajo, en tu esencia, nada cambia. Eres paz inamovible.",
		},
		Wisdom: models.Wisdom{
			Advice:     "No intentes calmar las olas, sumérgete en el océano.",
			FableTitle: "La Ola que Temía la Playa",
			Fable:      "Una ola pequeña lloraba porque veía a las otras romperse contra la playa. Una ola mayor le dijo: \"No sufras, no eres una ola, eres el agua\".",
		},
		ReminderPractice: "Hoy, ante cualquier problema, di: \"Esto es solo una ola\".",
		Bridge: models.Bridge{
			Chapter: "Capítulo 1.4",
			Topics:  []string{"La Metáfora del Océano", "Esencia vs Forma"},
		},
	},
}

// Catalog is the ordered, immutable set of course stations. It is built
// once at startup from the built-in stations plus any imported ones and
// never changes afterwards.
type Catalog struct {
	stations []models.DailyContent
}

// NewCatalog returns a catalog holding only the built-in stations
func NewCatalog() *Catalog {
	return NewCatalogWith(nil)
}

// NewCatalogWith merges extra stations (e.g. imported from a spreadsheet)
// into the built-in set. An extra station replaces a built-in one with the
// same day number.
func NewCatalogWith(extra []models.DailyContent) *Catalog {
	byDay := make(map[int]models.DailyContent, len(builtinStations)+len(extra))
	for _, s := range builtinStations {
		byDay[s.DayNumber] = s
	}
	for _, s := range extra {
		byDay[s.DayNumber] = s
	}

	stations := make([]models.DailyContent, 0, len(byDay))
	for _, s := range byDay {
		stations = append(stations, s)
	}
	sort.Slice(stations, func(i, j int) bool {
		return stations[i].DayNumber < stations[j].DayNumber
	})

	return &Catalog{stations: stations}
}

// ForDay returns the station for the given day number. A day with no
// station falls back to the first entry of the catalog; the miss is defined
// behavior, not an error.
func (c *Catalog) ForDay(day int) models.DailyContent {
	for _, s := range c.stations {
		if s.DayNumber == day {
			return s
		}
	}
	return c.stations[0]
}

// Stations returns every station in day order
func (c *Catalog) Stations() []models.DailyContent {
	return append([]models.DailyContent(nil), c.stations...)
}

// Len returns the number of stations
func (c *Catalog) Len() int {
	return len(c.stations)
}
