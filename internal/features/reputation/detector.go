// Package reputation — detector.go определяет, содержит ли сообщение благодарность.
package reputation

import "strings"

// thanksWords — фиксированный список слов благодарности.
// Сравнение идёт после приведения к нижнему регистру и чистки пунктуации.
var thanksWords = map[string]struct{}{
	"спасибо":    {},
	"спс":        {},
	"благодарю":  {},
	"заработало": {},
	"сработало":  {},
	"👍":          {},
}

// thumbsUpEmoji — единственное эмодзи стикера, за которое начисляется репутация.
// Варианты с тоном кожи (👍🏻 и т.д.) не считаются.
const thumbsUpEmoji = "👍"

// punctuation — символы, вырезаемые из каждого токена перед сравнением.
const punctuation = `&/\#,+()$~%.'":*?!<>{}`

// Classify — чистая функция классификации события.
// Не ходит ни в БД, ни в Telegram, не имеет побочных эффектов.
//
// Правила:
//   - событие без ответа (reply) → ClassNone;
//   - стикер-ответ → ClassStickerThumbsUp, только если эмодзи ровно "👍";
//   - текст-ответ → ClassTextThanks, если хотя бы один токен после
//     нормализации входит в список thanksWords.
func Classify(ev Event) ClassificationResult {
	switch ev.Kind {
	case EventStickerReply:
		if ev.StickerEmoji == thumbsUpEmoji {
			return ClassificationResult{Kind: ClassStickerThumbsUp, Target: ev.Target}
		}
		return ClassificationResult{Kind: ClassNone}

	case EventTextReply:
		if containsThanksWord(ev.Text) {
			return ClassificationResult{Kind: ClassTextThanks, Target: ev.Target}
		}
		return ClassificationResult{Kind: ClassNone}

	default:
		// Join/Leave/Plain благодарностью быть не могут
		return ClassificationResult{Kind: ClassNone}
	}
}

// containsThanksWord проверяет, есть ли в тексте слово благодарности.
// Достаточно первого совпадения — какое именно слово нашлось, дальше не важно.
func containsThanksWord(text string) bool {
	for _, token := range strings.Fields(strings.ToLower(text)) {
		if _, ok := thanksWords[stripPunctuation(token)]; ok {
			return true
		}
	}
	return false
}

// stripPunctuation вырезает из токена все символы набора punctuation,
// в любой позиции, не только по краям («спасибо!!» и «(спс)» тоже считаются).
func stripPunctuation(token string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return -1
		}
		return r
	}, token)
}
