package ceps

// Static CEPS catalog: 55 Likert statements (scale 1..5) mapping onto 10
// entrepreneurial competencies of 5 items each, plus 5 correction items used
// only for the bias-correction offset. Loaded at build time, never mutated.

const (
	TotalQuestions = 55
	ScaleMin       = 1
	ScaleMax       = 5
	MaxScore       = 25 // display ceiling per competency (radar fullMark)
)

type Question struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

type Competency struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Items       [5]int `json:"items"`
	Reverse     []int  `json:"reverse,omitempty"` // items scored negatively
}

// Competency keys.
const (
	KeyIniciativa    = "busqueda_iniciativas"
	KeyPersistencia  = "persistencia"
	KeyCumplimiento  = "cumplimiento"
	KeyCalidad       = "orientacion_calidad"
	KeyRiesgos       = "analisis_riesgos"
	KeyMetas         = "fijacion_metas"
	KeyInformacion   = "busqueda_informacion"
	KeyPlanificacion = "planificacion"
	KeyRedes         = "redes_apoyo"
	KeyAutoconfianza = "autoconfianza"
)

// CorrectionItems feed only the correction factor, never a competency score.
var CorrectionItems = [5]int{11, 22, 33, 44, 55}

// competencies is the fixed instrument order; radar output follows it.
var competencies = []Competency{
	{
		Key:         KeyIniciativa,
		Label:       "Búsqueda de Iniciativas",
		Description: "Actúa antes de que se lo pidan y aprovecha oportunidades poco comunes.",
		Items:       [5]int{1, 12, 23, 34, 45},
	},
	{
		Key:         KeyPersistencia,
		Label:       "Persistencia",
		Description: "Insiste frente a los obstáculos y no abandona las tareas difíciles.",
		Items:       [5]int{2, 13, 24, 35, 46},
	},
	{
		Key:         KeyCumplimiento,
		Label:       "Cumplimiento",
		Description: "Honra los compromisos adquiridos aun a costa de sacrificio personal.",
		Items:       [5]int{3, 14, 25, 36, 47},
	},
	{
		Key:         KeyCalidad,
		Label:       "Orientación a la Calidad",
		Description: "Se exige hacer las cosas mejor, más rápido o con un estándar superior.",
		Items:       [5]int{4, 15, 26, 37, 48},
	},
	{
		Key:         KeyRiesgos,
		Label:       "Análisis de Riesgos",
		Description: "Evalúa alternativas y asume riesgos moderados y calculados.",
		Items:       [5]int{5, 16, 27, 38, 49},
		Reverse:     []int{5, 27},
	},
	{
		Key:         KeyMetas,
		Label:       "Fijación de Metas",
		Description: "Se plantea objetivos claros, medibles y con significado personal.",
		Items:       [5]int{6, 17, 28, 39, 50},
		Reverse:     []int{6},
	},
	{
		Key:         KeyInformacion,
		Label:       "Búsqueda de Información",
		Description: "Investiga personalmente y consulta a quienes conocen el problema.",
		Items:       [5]int{7, 18, 29, 40, 51},
		Reverse:     []int{18},
	},
	{
		Key:         KeyPlanificacion,
		Label:       "Planificación",
		Description: "Divide proyectos grandes en tareas y anticipa los pasos necesarios.",
		Items:       [5]int{8, 19, 30, 41, 52},
		Reverse:     []int{30},
	},
	{
		Key:         KeyRedes,
		Label:       "Redes de Apoyo",
		Description: "Construye y utiliza una red de contactos para lograr sus objetivos.",
		Items:       [5]int{9, 20, 31, 42, 53},
		Reverse:     []int{9},
	},
	{
		Key:         KeyAutoconfianza,
		Label:       "Autoconfianza",
		Description: "Confía en su capacidad y se mantiene firme frente a la oposición.",
		Items:       [5]int{10, 21, 32, 43, 54},
		Reverse:     []int{10},
	},
}

var questions = []Question{
	{1, "Me esfuerzo por hacer las cosas que deben hacerse antes de que me lo pidan."},
	{2, "Cuando me enfrento a un obstáculo difícil, busco otras maneras de superarlo."},
	{3, "Termino mi trabajo a tiempo, tal como lo prometí."},
	{4, "Me molesta cuando las cosas no se hacen debidamente."},
	{5, "Solo me comprometo con un proyecto cuando tengo garantía total de que saldrá bien."},
	{6, "Me preocupa tanto el día a día que no pienso en metas de largo plazo."},
	{7, "Busco el consejo de personas que conocen bien los problemas que enfrento."},
	{8, "Planifico un proyecto grande dividiéndolo en tareas más pequeñas."},
	{9, "Prefiero resolver mis asuntos sin pedir ayuda a otras personas."},
	{10, "Cuando intento algo difícil, dudo seriamente de poder lograrlo."},
	{11, "Nunca he dicho algo que pudiera molestar a otra persona."},
	{12, "Busco nuevas oportunidades de negocio o de proyecto por iniciativa propia."},
	{13, "Insisto varias veces hasta conseguir que las personas hagan lo que necesito."},
	{14, "Cumplo con lo que ofrezco aunque ello me exija un sacrificio personal."},
	{15, "Mi rendimiento en el trabajo es mejor que el de otras personas con las que trabajo."},
	{16, "Calculo cuidadosamente las ventajas y desventajas antes de decidir."},
	{17, "Me fijo objetivos concretos y medibles para mi trabajo."},
	{18, "Cuando comienzo una tarea nueva, reúno poca información antes de empezar."},
	{19, "Pienso con anticipación los pasos necesarios para completar un trabajo."},
	{20, "Cultivo relaciones con personas que pueden ayudarme a lograr mis metas."},
	{21, "Me siento seguro de mis capacidades al enfrentar desafíos."},
	{22, "Siempre he devuelto todo lo que he pedido prestado."},
	{23, "Prefiero actuar de inmediato en lugar de esperar instrucciones."},
	{24, "Sigo intentándolo aun cuando algo me resulta muy difícil."},
	{25, "Hago lo que sea necesario para completar un trabajo comprometido."},
	{26, "Me esmero en que mi trabajo cumpla normas de calidad exigentes."},
	{27, "Evito cualquier situación cuyo resultado no pueda controlar por completo."},
	{28, "Tengo una visión clara de hacia dónde quiero llegar en el futuro."},
	{29, "Consulto varias fuentes distintas antes de tomar una decisión importante."},
	{30, "Me ocupo de los problemas a medida que surgen, en vez de anticiparlos."},
	{31, "Recurro a personas influyentes para alcanzar mis objetivos."},
	{32, "Cambio de parecer solo si existen argumentos realmente convincentes."},
	{33, "Jamás he envidiado los logros de otras personas."},
	{34, "Cuando veo un problema, propongo una solución sin que nadie me lo pida."},
	{35, "No abandono una tarea aunque me tome mucho más tiempo del previsto."},
	{36, "Asumo personalmente la responsabilidad de terminar los trabajos acordados."},
	{37, "Reviso los detalles para que el resultado quede mejor de lo esperado."},
	{38, "Asumo riesgos moderados cuando las posibilidades de éxito son razonables."},
	{39, "Cuanto más específica es una meta, más posibilidades tengo de lograrla."},
	{40, "Dedico tiempo a investigar personalmente el mercado o el entorno del proyecto."},
	{41, "Reviso mis planes y los ajusto según los resultados que voy obteniendo."},
	{42, "Me apoyo en contactos clave para conseguir información o recursos."},
	{43, "Me mantengo firme en mis decisiones aun frente a la oposición de otros."},
	{44, "Siempre digo la verdad, sin importar las circunstancias."},
	{45, "Aprovecho las oportunidades poco comunes para empezar algo nuevo."},
	{46, "Intento diversas formas de superar los obstáculos que impiden lograr mis metas."},
	{47, "Cuando un trabajo debe entregarse, colaboro incluso en tareas que no me corresponden."},
	{48, "Me empeño en hacer las cosas mejor, más rápido o más barato."},
	{49, "Hago cosas que otras personas consideran arriesgadas, tras evaluarlas bien."},
	{50, "Me planteo metas que representan un desafío y tienen significado personal."},
	{51, "Hago preguntas hasta comprender exactamente lo que se necesita."},
	{52, "Analizo de forma lógica las distintas alternativas antes de ejecutar."},
	{53, "Desarrollo y mantengo una red de contactos profesionales."},
	{54, "Confío en que puedo tener éxito en cualquier actividad que me proponga."},
	{55, "Nunca me he aprovechado de otra persona, ni siquiera un poco."},
}

// Competencies returns the 10 competencies in fixed instrument order.
func Competencies() []Competency { return competencies }

// Questions returns the full catalog ordered by ID (1..55).
func Questions() []Question { return questions }

// QuestionByID looks up a statement by its stable identifier.
func QuestionByID(id int) (Question, bool) {
	if id < 1 || id > TotalQuestions {
		return Question{}, false
	}
	return questions[id-1], true
}

// CompetencyByKey looks up a competency by its slug.
func CompetencyByKey(key string) (Competency, bool) {
	for _, c := range competencies {
		if c.Key == key {
			return c, true
		}
	}
	return Competency{}, false
}
