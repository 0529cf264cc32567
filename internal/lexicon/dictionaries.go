package lexicon

// Translation maps Russian words and phrases to Ukrainian. It is applied only
// to text classified as Russian.
var Translation = []Rule{
	// phrases
	{"для того чтобы", "для того щоб"},
	{"в связи с", "у зв'язку з"},
	{"по сравнению с", "порівняно з"},
	{"так как", "оскільки"},
	{"в том числе", "у тому числі"},
	{"при этом", "при цьому"},
	{"срок службы", "термін служби"},
	{"зарядное устройство", "зарядний пристрій"},
	{"источник бесперебойного питания", "джерело безперебійного живлення"},
	{"солнечная электростанция", "сонячна електростанція"},

	// equipment
	{"инвертор", "інвертор"},
	{"инвертора", "інвертора"},
	{"инверторы", "інвертори"},
	{"инверторов", "інверторів"},
	{"инверторный", "інверторний"},
	{"гибридный", "гібридний"},
	{"гибридная", "гібридна"},
	{"гибридное", "гібридне"},
	{"гибридные", "гібридні"},
	{"гибридного", "гібридного"},
	{"фазный", "фазний"},
	{"однофазный", "однофазний"},
	{"однофазная", "однофазна"},
	{"трехфазный", "трифазний"},
	{"трёхфазный", "трифазний"},
	{"трехфазная", "трифазна"},
	{"солнечная", "сонячна"},
	{"солнечный", "сонячний"},
	{"солнечные", "сонячні"},
	{"солнечных", "сонячних"},
	{"солнечной", "сонячної"},
	{"панели", "панелі"},
	{"батареи", "батареї"},
	{"системы", "системи"},
	{"аккумулятор", "акумулятор"},
	{"аккумулятора", "акумулятора"},
	{"аккумуляторы", "акумулятори"},
	{"аккумуляторов", "акумуляторів"},
	{"аккумуляторная", "акумуляторна"},
	{"литиевая", "літієва"},
	{"литиевый", "літієвий"},
	{"литиевые", "літієві"},
	{"высоковольтная", "високовольтна"},
	{"высоковольтный", "високовольтний"},
	{"низковольтная", "низьковольтна"},
	{"низковольтный", "низьковольтний"},
	{"зарядное", "зарядний"},
	{"устройство", "пристрій"},
	{"устройства", "пристрою"},
	{"оборудование", "обладнання"},
	{"оборудования", "обладнання"},
	{"контроллер", "контролер"},
	{"контроллера", "контролера"},
	{"преобразователь", "перетворювач"},
	{"источник", "джерело"},
	{"бесперебойного", "безперебійного"},
	{"бесперебойный", "безперебійний"},
	{"питание", "живлення"},
	{"питания", "живлення"},
	{"электрический", "електричний"},
	{"электрическая", "електрична"},
	{"электростанция", "електростанція"},
	{"электростанции", "електростанції"},
	{"электростанций", "електростанцій"},
	{"электроэнергия", "електроенергія"},
	{"электроэнергии", "електроенергії"},
	{"энергия", "енергія"},
	{"энергии", "енергії"},
	{"монокристаллический", "монокристалічний"},
	{"монокристаллическая", "монокристалічна"},
	{"поликристаллический", "полікристалічний"},
	{"поликристаллическая", "полікристалічна"},
	{"модулей", "модулів"},
	{"набор", "набір"},

	// properties
	{"мощность", "потужність"},
	{"мощностью", "потужністю"},
	{"мощный", "потужний"},
	{"напряжение", "напруга"},
	{"напряжения", "напруги"},
	{"емкость", "ємність"},
	{"ёмкость", "ємність"},
	{"емкостью", "ємністю"},
	{"защита", "захист"},
	{"защиты", "захисту"},
	{"защитой", "захистом"},
	{"размер", "розмір"},
	{"размеры", "розміри"},
	{"вес", "вага"},
	{"хранения", "зберігання"},
	{"хранение", "зберігання"},
	{"производитель", "виробник"},
	{"производства", "виробництва"},
	{"качество", "якість"},
	{"качества", "якості"},
	{"надежность", "надійність"},
	{"надежный", "надійний"},
	{"надежная", "надійна"},
	{"эффективность", "ефективність"},
	{"эффективности", "ефективності"},
	{"эффективный", "ефективний"},
	{"современный", "сучасний"},
	{"современная", "сучасна"},
	{"технология", "технологія"},
	{"технологии", "технології"},
	{"решение", "рішення"},
	{"решения", "рішення"},
	{"функция", "функція"},
	{"функции", "функції"},
	{"возможность", "можливість"},
	{"гарантия", "гарантія"},
	{"гарантии", "гарантії"},
	{"цена", "ціна"},
	{"стоимость", "вартість"},
	{"срок", "термін"},
	{"лет", "років"},
	{"наличии", "наявності"},
	{"наличие", "наявність"},
	{"новый", "новий"},
	{"новая", "нова"},
	{"высокий", "високий"},
	{"высокая", "висока"},
	{"высокой", "високої"},
	{"большой", "великий"},
	{"большая", "велика"},
	{"лучший", "найкращий"},
	{"лучше", "краще"},
	{"частный", "приватний"},
	{"частного", "приватного"},
	{"домашний", "домашній"},
	{"дом", "будинок"},
	{"дома", "будинку"},
	{"время", "час"},
	{"идеально", "ідеально"},
	{"идеальный", "ідеальний"},

	// grammar
	{"и", "і"},
	{"с", "з"},
	{"из", "з"},
	{"от", "від"},
	{"под", "під"},
	{"или", "або"},
	{"это", "це"},
	{"что", "що"},
	{"как", "як"},
	{"чтобы", "щоб"},
	{"который", "який"},
	{"которая", "яка"},
	{"которое", "яке"},
	{"которые", "які"},
	{"этот", "цей"},
	{"эта", "ця"},
	{"этого", "цього"},
	{"этой", "цієї"},
	{"эти", "ці"},
	{"этих", "цих"},
	{"также", "також"},
	{"более", "більше"},
	{"очень", "дуже"},
	{"если", "якщо"},
	{"когда", "коли"},
	{"только", "тільки"},
	{"можно", "можна"},
	{"нужно", "потрібно"},
	{"есть", "є"},
	{"является", "є"},
	{"имеет", "має"},
	{"имеют", "мають"},
	{"позволяет", "дозволяє"},
	{"обеспечивает", "забезпечує"},
	{"используется", "використовується"},
	{"работает", "працює"},
	{"работа", "робота"},
	{"работы", "роботи"},
	{"будет", "буде"},
	{"может", "може"},
	{"подходит", "підходить"},
	{"его", "його"},
	{"ее", "її"},
	{"их", "їх"},
	{"он", "він"},
	{"они", "вони"},
	{"мы", "ми"},
	{"вы", "ви"},
	{"всех", "всіх"},
}

// Fallback maps Russian-only letters that survived translation. The hard
// sign has no Ukrainian counterpart and is dropped.
var Fallback = []Rule{
	{"ы", "и"},
	{"э", "е"},
	{"ё", "е"},
	{"ъ", ""},
}

// Brands fixes lowercase spellings of brand and chemistry names. Other
// casings (such as an all-caps "MUST") are left alone.
var Brands = []Rule{
	{"deye", "Deye"},
	{"деye", "Deye"},
	{"must", "Must"},
	{"longi", "Longi"},
	{"lifepo4", "LiFePO4"},
	{"growatt", "Growatt"},
	{"victron", "Victron"},
	{"pylontech", "Pylontech"},
	{"huawei", "Huawei"},
	{"jinko", "Jinko"},
	{"trina", "Trina"},
	{"risen", "Risen"},
	{"sofar", "Sofar"},
	{"solis", "Solis"},
	{"fronius", "Fronius"},
	{"goodwe", "GoodWe"},
	{"ecoflow", "EcoFlow"},
	{"felicity", "Felicity"},
	{"dyness", "Dyness"},
	{"axioma", "Axioma"},
}

// Misspellings are corrupted words seen in supplier exports.
var Misspellings = []Rule{
	{"фазнй", "фазний"},
	{"волтнй", "вольтний"},
	{"літвй", "літієвий"},
	{"всоковольтнй", "високовольтний"},
	{"солнечнх", "сонячних"},
	{"елекростанцій", "електростанцій"},
	{"ефективіність", "ефективність"},
	{"потужніість", "потужність"},
	{"ємніість", "ємність"},
	{"надійніість", "надійність"},
	{"якіість", "якість"},
	{"максимільний", "максимальний"},
	{"мінімільний", "мінімальний"},
	{"номінільний", "номінальний"},
	{"сонцної", "сонячної"},
}

// Units canonicalizes measurement units. Kilowatts keep the spacing they came
// with; ampere-hours, amperes and volts are separated from the number.
// Amperes and volts are only touched when the number starts a token, so SKUs
// such as "SUN-100A" stay intact. Their expressions skip the canonical
// "100 А" form; a match eats the separator the next value needs, so a run
// like "16A 32A" takes a second round.
var Units = Patterns{
	pattern(`(?i)(^|[^\p{L}])(?:квт\s*[-·*]?\s*(?:год|час|ч)|kwh)([^\p{L}]|$)`, "${1}кВт·год${2}"),
	pattern(`(?i)(^|[^\p{L}])(?:квт|kwt)([^\p{L}·]|$)`, "${1}кВт${2}"),
	pattern(`(?i)(\d)\s*(?:ah|[аa]\s*[·*]?\s*год|ампер-годин|ампер-час)([^\p{L}]|$)`, "${1} А·год${2}"),
	settling(`(^|[\s(])(\d+(?:[.,]\d+)?)(?:\s*A|(?:|\s{2,}|[\t\n\f\r])А)([^\p{L}\p{N}\-·]|$)`, "${1}${2} А${3}"),
	settling(`(^|[\s(])(\d+(?:[.,]\d+)?)(?:\s*V|(?:|\s{2,}|[\t\n\f\r])В)([^\p{L}\p{N}\-·]|$)`, "${1}${2} В${3}"),
}

// Morphology restores adjective endings that lost their vowel.
var Morphology = Patterns{
	pattern(`([бвгґджзклмнпрстфхцчшщ])й([^\p{L}]|$)`, "${1}ий${2}"),
}

// Punctuation collapses doubled marks and stray spaces.
var Punctuation = Patterns{
	pattern(`\s+([,.;:!?])`, "$1"),
	pattern(`,{2,}`, ","),
	pattern(`;{2,}`, ";"),
	pattern(`!{2,}`, "!"),
	pattern(`\?{2,}`, "?"),
	pattern(`\.{2,}`, "."),
	pattern(`[,;]\.|\.,`, "."),
	pattern(`([,;])(\p{L})`, "$1 $2"),
	pattern(`\(\s+`, "("),
	pattern(`\s+\)`, ")"),
	pattern(`\s{2,}`, " "),
}
