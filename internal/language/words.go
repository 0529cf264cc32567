package language

// disqualifying letters exist in the Russian alphabet only.
var disqualifying = map[rune]bool{'ы': true, 'ъ': true, 'э': true, 'ё': true}

// targetLetters exist in the Ukrainian alphabet only.
var targetLetters = map[rune]bool{'і': true, 'ї': true, 'є': true, 'ґ': true}

// functionWords are Russian words of four or more letters that are not valid
// Ukrainian. Shorter words are never scanned.
var functionWords = setOf(
	// pronouns and determiners
	"который", "которая", "которое", "которые", "которых", "котором", "которой", "которую", "которым",
	"этот", "этого", "этой", "этих",
	"такой", "такая", "такое", "такие", "какой", "какая", "какое", "какие",
	"каждая", "каждое", "каждого", "любой", "любая", "любое",
	"другой", "другая", "другое", "другие",
	"самая", "самое", "самые", "самого",
	"всего", "всему", "всех", "всем", "всеми",
	"себя", "тебя", "меня", "него", "нему", "чего", "чему",
	"своей", "своих", "свой", "свою", "вашего", "вашей", "нашей", "нашего", "нашем",
	// conjunctions, particles, adverbs
	"если", "либо", "также", "тоже", "зато", "пока", "хотя", "чтоб", "чтобы",
	"лишь", "только", "именно", "вообще", "вполне", "очень", "более", "менее",
	"когда", "тогда", "всегда", "иногда", "никогда", "сейчас", "сегодня", "здесь",
	"везде", "туда", "сюда", "откуда", "куда", "зачем", "почему", "потому", "поэтому",
	"поскольку", "однако", "почти", "сразу", "вместе", "нужно", "можно", "нельзя", "надо",
	// prepositions
	"после", "между", "среди", "кроме", "вместо", "внутри", "снаружи", "около", "возле",
	"вокруг", "против", "благодаря", "согласно", "вследствие", "несмотря", "сквозь",
	// verbs
	"является", "являются", "имеет", "имеют", "иметь", "обладает", "позволяет", "позволяют",
	"обеспечивает", "обеспечивают", "используется", "используются", "использовать",
	"предназначен", "предназначена", "работает", "работают", "применяется",
	"будет", "будут", "была", "было", "были", "есть", "может", "могут", "должен", "должна",
	"получить", "сделать", "делает", "стоит", "подходит",
	// common catalog vocabulary
	"использования", "наличии", "наличие", "срок", "размер", "качество", "надежность",
	"надежная", "надежный", "цена", "гарантия", "лучший", "лучше", "новая", "новое",
	"мощность", "мощный", "напряжение", "емкость", "устройство", "оборудование",
	"питания", "питание", "солнечная", "солнечные", "солнечных", "солнечный",
	"панели", "батареи", "инвертор", "инверторы", "инвертора", "аккумулятор",
	"аккумуляторная", "аккумуляторы", "зарядное", "контроллер", "преобразователь",
	"источник", "производитель", "технология", "решение", "функция", "возможность",
	"хранения", "защита", "защиты", "литиевая", "литиевый", "гибридный", "гибридная",
	"энергия", "энергии", "электростанция", "электрический", "высоковольтная",
	"монокристаллический", "поликристаллический", "эффективность", "современный",
)

// constructions are multi-word Russian phrases matched on token boundaries.
var constructions = [][]string{
	{"для", "того", "чтобы"},
	{"в", "связи", "с"},
	{"по", "сравнению", "с"},
	{"что", "является"},
	{"который", "имеет"},
	{"так", "как"},
	{"а", "также"},
	{"в", "том", "числе"},
	{"при", "этом"},
}

// suspicious words are common in Russian but also occur in Ukrainian text,
// so they only ever raise an audit flag.
var suspicious = setOf(
	"это", "что", "как", "или", "его", "ее", "их", "от", "до", "при", "без",
	"под", "над", "про", "через", "после", "перед", "вместо", "кроме", "среди",
	"между", "внутри", "снаружи", "около", "возле", "вокруг", "против",
	"благодаря", "согласно", "вследствие", "несмотря",
)

func setOf(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}
