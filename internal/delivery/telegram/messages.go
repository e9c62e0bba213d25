// messages.go contains message templates for Telegram.

package telegram

// User-facing texts.
const (
	msgWelcome = "<b>¡Bienvenidos al País de las Maravillas!</b>\n\n" +
		"Les mostraré frases del cuento con una palabra escondida (<b>_____</b>).\n" +
		"Escriban la palabra que creen que falta y verán cómo cambia su puntuación.\n\n" +
		"Comandos:\n" +
		"/start - empezar una partida nueva\n" +
		"/score - ver la puntuación actual\n" +
		"/stop - terminar la partida\n" +
		"/words - elegir palabras al azar para un personaje\n" +
		"/prompt - armar un prompt por secciones\n" +
		"/stats - ver las frases más difíciles\n" +
		"/help - ayuda"
	msgHelp = "Escriban una sola palabra para completar la frase.\n\n" +
		"/start - empezar una partida nueva\n" +
		"/score - ver la puntuación actual\n" +
		"/stop - terminar la partida\n" +
		"/words - elegir palabras al azar\n" +
		"/prompt - armar un prompt. Ejemplo:\n" +
		"<code>/prompt idea: un cuento\ndetalles: corto\nejemplos: Había una vez...\ninstrucciones: sé breve</code>\n" +
		"/stats - ver las frases más difíciles"
	msgEmptyAnswer     = "¡Por favor escriban una palabra!"
	msgNoGame          = "Todavía no hay una partida. Usen /start para empezar."
	msgWaitNextPhrase  = "Un momento… ya viene la siguiente frase."
	msgNoPhrases       = "No hay frases disponibles. Inténtenlo más tarde."
	msgNoWords         = "No hay listas de palabras disponibles."
	msgNoStats         = "Todavía no hay respuestas registradas."
	msgInternalError   = "Algo salió mal. Inténtenlo más tarde."
	msgUnknownCommand  = "Comando desconocido. Usen /help para ver la lista de comandos."
	msgPromptPrefix    = "Su prompt:"
	msgWordsTitle      = "🎲 Palabras elegidas"
	msgStatsTitle      = "📊 Frases más difíciles"
	msgScoreTitle      = "Puntuación"
	msgNewGameTitle    = "🐇 ¡Empieza la partida!"
	msgNextPhraseTitle = "Siguiente frase:"
	msgGameOverTitle   = "🏁 Fin de la partida"
)
