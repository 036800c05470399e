package assistant

import "github.com/yanqian/weather-assistant/internal/domain/nlu"

var smallTalkReplies = map[nlu.SmallTalkKind]map[string]string{
	nlu.SmallTalkGreeting: {
		"en": "Hello! Ask me about the weather in any city, or whether it's a good day for an activity.",
		"es": "¡Hola! Pregúntame por el tiempo en cualquier ciudad o si es un buen día para una actividad.",
		"fr": "Bonjour ! Demandez-moi la météo d'une ville ou si c'est une bonne journée pour une activité.",
		"de": "Hallo! Frag mich nach dem Wetter in einer Stadt oder ob heute ein guter Tag für eine Aktivität ist.",
		"it": "Ciao! Chiedimi il meteo di qualsiasi città o se è una buona giornata per un'attività.",
		"pt": "Olá! Pergunte-me sobre o tempo em qualquer cidade ou se é um bom dia para uma atividade.",
		"hi": "Namaste! Kisi bhi shahar ka mausam ya kisi activity ke liye din kaisa hai, mujhse poochiye.",
		"ja": "こんにちは！どの都市の天気でも、アクティビティに良い日かどうかでも聞いてください。",
	},
	nlu.SmallTalkThanks: {
		"en": "You're welcome! Let me know if you need anything else about the weather.",
		"es": "¡De nada! Avísame si necesitas algo más sobre el tiempo.",
		"fr": "Avec plaisir ! Dites-moi si vous avez besoin d'autre chose sur la météo.",
		"de": "Gern geschehen! Sag Bescheid, wenn du noch etwas zum Wetter brauchst.",
		"it": "Prego! Fammi sapere se ti serve altro sul meteo.",
		"pt": "De nada! Avise se precisar de mais alguma coisa sobre o tempo.",
		"hi": "Aapka swagat hai! Mausam ke baare mein aur kuch chahiye to bataiye.",
		"ja": "どういたしまして！天気について他に知りたいことがあれば聞いてください。",
	},
	nlu.SmallTalkFarewell: {
		"en": "Goodbye! Have a great day, whatever the weather.",
		"es": "¡Adiós! Que tengas un buen día, haga el tiempo que haga.",
		"fr": "Au revoir ! Bonne journée, quel que soit le temps.",
		"de": "Tschüss! Einen schönen Tag, egal bei welchem Wetter.",
		"it": "Arrivederci! Buona giornata, con qualsiasi tempo.",
		"pt": "Tchau! Tenha um ótimo dia, faça chuva ou faça sol.",
		"hi": "Alvida! Aapka din shubh ho, mausam chahe jaisa bhi ho.",
		"ja": "さようなら！どんな天気でも良い一日を。",
	},
}

// smallTalkReply returns the canned acknowledgment for talk. Replies never
// mention a city.
func smallTalkReply(talk nlu.SmallTalk) string {
	replies := smallTalkReplies[talk.Kind]
	if reply, ok := replies[talk.Language]; ok {
		return reply
	}
	return replies["en"]
}
