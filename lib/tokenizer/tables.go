package tokenizer

// removable characters are detached from both ends of a chunk.
const removable = `'"()[]{}<>!?,;:=+*★|/\&^_` + "`" + `~%`

// enclitics are the pronouns that may follow a verb after a hyphen.
var enclitics = map[string]struct{}{
	"me":   {},
	"te":   {},
	"se":   {},
	"lhe":  {},
	"o":    {},
	"a":    {},
	"nos":  {},
	"vos":  {},
	"lhes": {},
	"os":   {},
	"as":   {},
	"lo":   {},
	"la":   {},
	"los":  {},
	"las":  {},
}

// terminations are the future and conditional endings that close a mesoclisis.
var terminations = map[string]struct{}{
	"ia":    {},
	"ias":   {},
	"iamos": {},
	"ieis":  {},
	"iam":   {},
	"ei":    {},
	"as":    {},
	"a":     {},
	"emos":  {},
	"eis":   {},
	"ão":    {},
	"á":     {},
}

// infinitives maps the accented vowel ending a verb before a clitic to the
// infinitive ending it stands for: dá-lo is dar + lo.
var infinitives = map[rune]string{
	'á': "ar",
	'ê': "er",
	'í': "ir",
	'ô': "or",
}

// ambiguous forms are resolved by the Disambiguator rather than the table.
var ambiguous = map[string]struct{}{
	"nos":     {},
	"consigo": {},
	"pra":     {},
	"pela":    {},
	"pelas":   {},
	"pelo":    {},
	"pelos":   {},
}

// contractions maps a lower case contraction to its two syntactic words.
var contractions = map[string][2]string{
	"à":        {"a", "a"},
	"às":       {"a", "as"},
	"ao":       {"a", "o"},
	"aos":      {"a", "os"},
	"àquela":   {"a", "aquela"},
	"àquelas":  {"a", "aquelas"},
	"àquele":   {"a", "aquele"},
	"àqueles":  {"a", "aqueles"},
	"comigo":   {"com", "mim"},
	"contigo":  {"com", "ti"},
	"consigo":  {"com", "si"},
	"conosco":  {"com", "nós"},
	"convosco": {"com", "vós"},
	"da":       {"de", "a"},
	"das":      {"de", "as"},
	"do":       {"de", "o"},
	"dos":      {"de", "os"},
	"dali":     {"de", "ali"},
	"daqui":    {"de", "aqui"},
	"daí":      {"de", "aí"},
	"desta":    {"de", "esta"},
	"destas":   {"de", "estas"},
	"deste":    {"de", "este"},
	"destes":   {"de", "estes"},
	"dessa":    {"de", "essa"},
	"dessas":   {"de", "essas"},
	"desse":    {"de", "esse"},
	"desses":   {"de", "esses"},
	"daquela":  {"de", "aquela"},
	"daquelas": {"de", "aquelas"},
	"daquele":  {"de", "aquele"},
	"daqueles": {"de", "aqueles"},
	"disto":    {"de", "isto"},
	"disso":    {"de", "isso"},
	"daquilo":  {"de", "aquilo"},
	"dela":     {"de", "ela"},
	"delas":    {"de", "elas"},
	"dele":     {"de", "ele"},
	"deles":    {"de", "eles"},
	"doutra":   {"de", "outra"},
	"doutras":  {"de", "outras"},
	"doutro":   {"de", "outro"},
	"doutros":  {"de", "outros"},
	"dum":      {"de", "um"},
	"duns":     {"de", "uns"},
	"duma":     {"de", "uma"},
	"dumas":    {"de", "umas"},
	"na":       {"em", "a"},
	"nas":      {"em", "as"},
	"no":       {"em", "o"},
	"nos":      {"em", "os"},
	"nesta":    {"em", "esta"},
	"nestas":   {"em", "estas"},
	"neste":    {"em", "este"},
	"nestes":   {"em", "estes"},
	"nessa":    {"em", "essa"},
	"nessas":   {"em", "essas"},
	"nesse":    {"em", "esse"},
	"nesses":   {"em", "esses"},
	"naquela":  {"em", "aquela"},
	"naquelas": {"em", "aquelas"},
	"naquele":  {"em", "aquele"},
	"naqueles": {"em", "aqueles"},
	"nisto":    {"em", "isto"},
	"nisso":    {"em", "isso"},
	"naquilo":  {"em", "aquilo"},
	"nela":     {"em", "ela"},
	"nelas":    {"em", "elas"},
	"nele":     {"em", "ele"},
	"neles":    {"em", "eles"},
	"noutra":   {"em", "outra"},
	"noutras":  {"em", "outras"},
	"noutro":   {"em", "outro"},
	"noutros":  {"em", "outros"},
	"num":      {"em", "um"},
	"nuns":     {"em", "uns"},
	"numa":     {"em", "uma"},
	"numas":    {"em", "umas"},
	"pela":     {"por", "a"},
	"pelas":    {"por", "as"},
	"pelo":     {"por", "o"},
	"pelos":    {"por", "os"},
	"pra":      {"para", "a"},
	"pras":     {"para", "as"},
	"pro":      {"para", "o"},
	"pros":     {"para", "os"},
	"prum":     {"para", "um"},
	"pruns":    {"para", "uns"},
	"pruma":    {"para", "uma"},
	"prumas":   {"para", "umas"},
}
