package content

import (
	"strings"

	"github.com/example/adytum/pkg/models"
)

// theoryChapters is the theory library the stations bridge into
var theoryChapters = []models.TheoryChapter{
	{
		ID:    "cap-1",
		Title: "La Realidad como Campo de Conciencia",
		Sections: []models.TheorySection{
			{
				ID:      "1.1",
				Title:   "La Naturaleza de la Realidad",
				Content: "Tu mundo no es algo que \"sucede\" fuera de ti, es una proyección de tu estado interno. Todo lo que percibes es filtrado por tu sistema de creencias. La conciencia no es un subproducto del cerebro, sino la base fundamental sobre la cual se construye la materia. Reconocer esto es el primer paso para dejar de ser una víctima de las circunstancias y convertirte en el arquitecto de tu vibración.",
			},
			{
				ID:      "1.4",
				Title:   "La Metáfora del Océano y las Olas",
				Content: "Imagina un océano inmenso. En ese océano se forman olas: grandes, pequeñas, suaves, violentas. Cada ola tiene una forma, un tiempo de vida, una dirección. Pero ninguna ola deja de ser agua. El océano es la Vida, la Conciencia. Cada ola es una persona, una situación. Desde la ola, las otras parecen rivales. Desde el océano, son solo formas del agua.",
			},
			{
				ID:      "1.5",
				Title:   "El Papel del Observador",
				Content: "La manera en que miras algo cambia lo que ves y cómo lo vives. En este curso, \"observador\" es esa parte de ti que puede mirar tus pensamientos y emociones. A medida que el observador se fortalece, la ola deja de vivir cada movimiento como catástrofe e intuye el océano.",
			},
		},
	},
	{
		ID:    "cap-2",
		Title: "Cuerpo y Presencia: El Templo Vivo",
		Sections: []models.TheorySection{
			{
				ID:      "2.1",
				Title:   "El Retorno al Origen",
				Content: "Porque el cuerpo está siempre en el presente. La mente puede viajar al ayer o al mañana, pero el cuerpo es la única ancla que solo existe en el Aquí y Ahora. Entrenar el cuerpo es calmar la base de tu sistema nervioso. Sin un cuerpo anclado, la mente espiritual vuela sin rumbo; el cuerpo es el puerto seguro para la conciencia expandida.",
			},
			{
				ID:      "2.2",
				Title:   "El Cuerpo como Termómetro",
				Content: "Tu cuerpo no miente. Si hay tensión en los hombros, hay un pensamiento de carga. Si hay nudo en el estómago, hay una emoción de miedo. Aprender a leer el cuerpo es aprender a leer tu subconsciente en tiempo real. No ignores las señales; cada presión es un mensaje de tu alma pidiendo atención y presencia.",
			},
			{
				ID:      "2.3",
				Title:   "La Biología del Hábito",
				Content: "La ciencia y la mística coinciden: los circuitos neuronales tardan aproximadamente 21 días en crear un nuevo surco de información. Por eso, la repetición diaria de estos textos no es monotonía, es ingeniería espiritual. Estamos tallando nuevas vías de luz en tu subconsciente para que la paz sea tu respuesta automática.",
			},
		},
	},
}

// bookReferences are the author's source books shown in the library
var bookReferences = []models.BookReference{
	{
		Title:          "El Despertar del Guerrero Interior",
		Summary:        "Un tratado sobre la transmutación del miedo en coraje y la forja del propósito inquebrantable.",
		CorePrinciples: []string{"Alquimia Mental", "Voluntad de Hierro", "Presencia Absoluta", "Destino Sagrado"},
	},
	{
		Title:          "La Danza del Equilibrio",
		Summary:        "Una guía para armonizar las energías internas y externas mediante la ley de correspondencia.",
		CorePrinciples: []string{"Correspondencia", "Fluidez Etérea", "Centro Sagrado", "Gratitud Cósmica"},
	},
}

// TheoryChapters returns the theory library
func TheoryChapters() []models.TheoryChapter {
	return append([]models.TheoryChapter(nil), theoryChapters...)
}

// BookReferences returns the author's source books
func BookReferences() []models.BookReference {
	return append([]models.BookReference(nil), bookReferences...)
}

// TotalSections counts the readable sections across all chapters
func TotalSections() int {
	total := 0
	for _, cap := range theoryChapters {
		total += len(cap.Sections)
	}
	return total
}

// ChapterForBridge resolves a station's bridge text ("Capítulo 1.1 y 1.2")
// to the theory chapter it points at. The second return value reports
// whether a chapter matched.
func ChapterForBridge(bridge string) (models.TheoryChapter, bool) {
	lowered := strings.ToLower(bridge)
	for _, cap := range theoryChapters {
		number := strings.TrimPrefix(cap.ID, "cap-")
		if strings.Contains(lowered, number) {
			return cap, true
		}
	}
	return models.TheoryChapter{}, false
}
