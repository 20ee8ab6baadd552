package ceps

// Overall profile archetypes.
const (
	ProfileLeader        = "leader"
	ProfilePerfectionist = "perfectionist"
	ProfileRiskTaker     = "risktaker"
	ProfileNetworker     = "networker"
	ProfileBalanced      = "balanced"
	ProfileDeveloping    = "developing"
)

// CompetencyRecommendation returns guidance text for a (competency, level)
// pair. The pair domains are fixed, so the fallback should never fire, but it
// exists so a bad key cannot surface an empty report section.
func CompetencyRecommendation(key, level string) string {
	if byLevel, ok := recommendations[key]; ok {
		if text, ok := byLevel[level]; ok {
			return text
		}
	}
	return "Continúa desarrollando esta competencia con práctica deliberada y retroalimentación frecuente."
}

// OverallProfile classifies a complete score map into an archetype using an
// ordered decision list; the first matching rule wins, so a profile meeting
// both the leader and perfectionist conditions is reported as leader.
func OverallProfile(scores map[string]int) string {
	avg := 0
	low := 0
	for _, c := range competencies {
		s := scores[c.Key]
		avg += s
		if s <= 10 {
			low++
		}
	}
	avg /= len(competencies)

	switch {
	case scores[KeyIniciativa] >= 19 && scores[KeyPersistencia] >= 19:
		return ProfileLeader
	case scores[KeyCalidad] >= 19 && scores[KeyCumplimiento] >= 19:
		return ProfilePerfectionist
	case scores[KeyRiesgos] >= 19 && avg >= 15:
		return ProfileRiskTaker
	case scores[KeyRedes] >= 19:
		return ProfileNetworker
	case low <= 1 && avg >= 14:
		return ProfileBalanced
	default:
		return ProfileDeveloping
	}
}

// ProfileDescription returns the report blurb for an archetype.
func ProfileDescription(profile string) string {
	if text, ok := profileDescriptions[profile]; ok {
		return text
	}
	return profileDescriptions[ProfileDeveloping]
}

var profileDescriptions = map[string]string{
	ProfileLeader:        "Perfil emprendedor líder: combina iniciativa alta con persistencia sobresaliente. Busca proyectos donde pueda dirigir equipos y abrir camino.",
	ProfilePerfectionist: "Perfil orientado a la excelencia: destaca en calidad y cumplimiento. Cuida que el estándar alto no frene la velocidad de ejecución.",
	ProfileRiskTaker:     "Perfil tomador de riesgos calculados: evalúa bien y se atreve. Apóyate en redes y planificación para sostener las apuestas.",
	ProfileNetworker:     "Perfil conector: tu red de apoyo es tu mayor activo. Úsala para compensar áreas aún en desarrollo.",
	ProfileBalanced:      "Perfil equilibrado: sin debilidades marcadas y con promedio sólido. Elige una o dos competencias para llevarlas a nivel alto.",
	ProfileDeveloping:    "Perfil en desarrollo: varias competencias por fortalecer. Prioriza metas pequeñas y medibles para construir momentum.",
}

// recommendations is keyed by competency key, then level band.
var recommendations = map[string]map[string]string{
	KeyIniciativa: {
		LevelBajo:     "Empieza por detectar una oportunidad pequeña por semana y actúa sobre ella sin esperar instrucciones.",
		LevelPromedio: "Ya tomas iniciativa en contextos conocidos; practica proponerla también en terrenos nuevos.",
		LevelAlto:     "Tu iniciativa es sobresaliente; canalízala eligiendo bien dónde invertir tu energía.",
	},
	KeyPersistencia: {
		LevelBajo:     "Define de antemano cuántos intentos harás antes de abandonar y cúmplelo; sube la cuota gradualmente.",
		LevelPromedio: "Persistes cuando el camino es claro; entrena mantener el esfuerzo cuando hay ambigüedad.",
		LevelAlto:     "Tu persistencia es una fortaleza; cuida no confundirla con insistir en estrategias agotadas.",
	},
	KeyCumplimiento: {
		LevelBajo:     "Compromete menos y entrega siempre: recorta tu lista de promesas a las que puedas honrar.",
		LevelPromedio: "Cumples en condiciones normales; prepara planes de contingencia para cuando algo falle.",
		LevelAlto:     "Tu palabra tiene peso; úsala para construir relaciones comerciales de largo plazo.",
	},
	KeyCalidad: {
		LevelBajo:     "Define un estándar mínimo verificable por entregable y revísalo antes de dar algo por terminado.",
		LevelPromedio: "Tu calidad es correcta; busca retroalimentación externa para encontrar los detalles que se escapan.",
		LevelAlto:     "Exiges un estándar alto; delimita cuándo «suficientemente bueno» es la mejor decisión.",
	},
	KeyRiesgos: {
		LevelBajo:     "Practica decisiones con riesgo acotado: apuesta pequeño, mide el resultado y ajusta.",
		LevelPromedio: "Evalúas riesgos razonablemente; formaliza el análisis con escenarios y costos de salida.",
		LevelAlto:     "Calculas y te atreves; documenta tus criterios para poder delegar decisiones de riesgo.",
	},
	KeyMetas: {
		LevelBajo:     "Escribe una meta a 90 días con un indicador numérico y revísala cada semana.",
		LevelPromedio: "Fijas metas operativas; conéctalas con una visión de mediano plazo que les dé dirección.",
		LevelAlto:     "Tus metas son claras y desafiantes; compártelas con tu equipo para alinear esfuerzos.",
	},
	KeyInformacion: {
		LevelBajo:     "Antes de decidir, consulta al menos dos fuentes independientes y a una persona con experiencia directa.",
		LevelPromedio: "Buscas información cuando el problema lo exige; hazlo también de forma preventiva.",
		LevelAlto:     "Investigas a fondo; cuida el equilibrio entre seguir indagando y empezar a ejecutar.",
	},
	KeyPlanificacion: {
		LevelBajo:     "Divide tu próximo proyecto en tareas de menos de un día y ordénalas antes de empezar.",
		LevelPromedio: "Planificas lo inmediato; incorpora hitos de revisión para ajustar el plan sobre la marcha.",
		LevelAlto:     "Planificas con solvencia; asegúrate de dejar holgura para lo imprevisto.",
	},
	KeyRedes: {
		LevelBajo:     "Retoma contacto con tres personas de tu entorno profesional este mes y ofrece ayuda antes de pedirla.",
		LevelPromedio: "Tienes red en tu círculo cercano; amplíala hacia sectores distintos al tuyo.",
		LevelAlto:     "Tu red es un activo potente; sistematiza cómo la cultivas para que no dependa de la memoria.",
	},
	KeyAutoconfianza: {
		LevelBajo:     "Lleva un registro de logros semanales, por pequeños que sean, y revísalo antes de cada reto.",
		LevelPromedio: "Confías en terreno conocido; exponte deliberadamente a retos algo mayores que los habituales.",
		LevelAlto:     "Tu confianza sostiene al equipo; contrástala con datos para que no derive en exceso de optimismo.",
	},
}
