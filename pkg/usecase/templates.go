package usecase

// Templates — фиксированные промпты стратегий. Держим их данными,
// отдельно от логики вызова.
type Templates struct {
	ZeroShot string
	FewShot  string
}

// ZeroShotPrompt — один прямой вопрос без примеров.
const ZeroShotPrompt = `What are the top 10 Python libraries for AI?`

// FewShotPrompt — четыре размеченных примера и одно предложение без метки.
const FewShotPrompt = `Please classify the emotion (positive or negative) of the following sentences:

Sentence: "This movie was great!"
Emotion: Positive

Sentence: "The service was very slow and I was dissatisfied."
Emotion: Negative

Sentence: "The quality was not good for the price."
Emotion: Negative

Sentence: "The staff were polite and I was able to shop comfortably."
Emotion: Positive

Sentence: "The wait time was too long and I was tired."
Emotion:`

// DefaultTemplates возвращает встроенные шаблоны.
func DefaultTemplates() Templates {
	return Templates{
		ZeroShot: ZeroShotPrompt,
		FewShot:  FewShotPrompt,
	}
}
