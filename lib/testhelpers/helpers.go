package testhelpers

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/abbrev"
	"gitlab.mdcatapult.io/informatics/software-engineering/portparser/lib/lexicon"
)

// MasterFile is a small WORDmaster.txt covering the words used in tests.
const MasterFile = `eu,PRON
ele,PRON
eles,PRON
deram,VERB
vemos,VERB
fazer,VERB
levou,VERB
caem,VERB
dias,NOUN
mesa,NOUN
casa,NOUN VERB
macio,ADJ
rapidamente,ADV
o,DET PRON
os,DET PRON
a,DET ADP PRON
as,DET PRON
um,DET NUM
é,AUX VERB
que,PRON SCONJ
mais,ADV
tanto,ADV DET
três,NUM
`

// TagFiles holds the content of each <TAG>.tsv matching MasterFile.
var TagFiles = map[lexicon.Tag]string{
	lexicon.ADJ: "macio\tmacio\tGender=Masc|Number=Sing\n",
	lexicon.ADP: "a\ta\t_\n",
	lexicon.ADV: "rapidamente\trapidamente\t_\nmais\tmais\t_\ntanto\ttanto\t_\n",
	lexicon.AUX: "é\tser\tMood=Ind|Number=Sing|Person=3|Tense=Pres|VerbForm=Fin\n",
	lexicon.CCONJ: "",
	lexicon.DET: "o\to\tDefinite=Def|Gender=Masc|Number=Sing|PronType=Art\n" +
		"os\to\tDefinite=Def|Gender=Masc|Number=Plur|PronType=Art\n" +
		"a\to\tDefinite=Def|Gender=Fem|Number=Sing|PronType=Art\n" +
		"as\to\tDefinite=Def|Gender=Fem|Number=Plur|PronType=Art\n" +
		"um\tum\tDefinite=Ind|Gender=Masc|Number=Sing|PronType=Art\n" +
		"tanto\ttanto\tGender=Masc|Number=Sing|PronType=Ind\n",
	lexicon.INTJ: "",
	lexicon.NOUN: "dias\tdia\tGender=Masc|Number=Plur\n" +
		"mesa\tmesa\tGender=Fem|Number=Sing\n" +
		"casa\tcasa\tGender=Fem|Number=Sing\n",
	lexicon.NUM: "um\tum\tNumType=Card\ntrês\ttrês\tNumType=Card\n",
	lexicon.PRON: "eu\teu\tCase=Nom|Number=Sing|Person=1|PronType=Prs\n" +
		"ele\tele\tCase=Nom|Gender=Masc|Number=Sing|Person=3|PronType=Prs\n" +
		"eles\teles\tCase=Nom|Gender=Masc|Number=Plur|Person=3|PronType=Prs\n" +
		"o\to\tCase=Acc|Gender=Masc|Number=Sing|Person=3|PronType=Prs\n" +
		"os\to\tCase=Acc|Gender=Masc|Number=Plur|Person=3|PronType=Prs\n" +
		"a\to\tCase=Acc|Gender=Fem|Number=Sing|Person=3|PronType=Prs\n" +
		"as\to\tCase=Acc|Gender=Fem|Number=Plur|Person=3|PronType=Prs\n" +
		"que\tque\tPronType=Rel\n",
	lexicon.SCONJ: "que\tque\t_\n",
	lexicon.VERB: "deram\tdar\tMood=Ind|Number=Plur|Person=3|Tense=Past|VerbForm=Fin\n" +
		"vemos\tver\tMood=Ind|Number=Plur|Person=1|Tense=Pres|VerbForm=Fin\n" +
		"fazer\tfazer\tVerbForm=Inf\n" +
		"levou\tlevar\tMood=Ind|Number=Sing|Person=3|Tense=Past|VerbForm=Fin\n" +
		"caem\tcair\tMood=Ind|Number=Plur|Person=3|Tense=Pres|VerbForm=Fin\n" +
		"casa\tcasar\tMood=Ind|Number=Sing|Person=3|Tense=Pres|VerbForm=Fin\n" +
		"é\tser\tMood=Ind|Number=Sing|Person=3|Tense=Pres|VerbForm=Fin\n",
}

// Abbreviations is a short abbreviation list used in tests.
const Abbreviations = "Sr.\nSra.\nDr.\nex.\netc.\np.\n"

// Lexicon builds the test lexicon in memory.
func Lexicon() *lexicon.Lexicon {
	tagFiles := make(map[lexicon.Tag]io.Reader, len(TagFiles))
	for tag, content := range TagFiles {
		tagFiles[tag] = strings.NewReader(content)
	}
	lex, err := lexicon.Read(strings.NewReader(MasterFile), tagFiles)
	if err != nil {
		panic(err)
	}
	return lex
}

// WriteLexicon writes the test lexicon files into dir.
func WriteLexicon(dir string) error {
	if err := os.WriteFile(filepath.Join(dir, lexicon.MasterFileName), []byte(MasterFile), 0o644); err != nil {
		return err
	}
	for tag, content := range TagFiles {
		if err := os.WriteFile(filepath.Join(dir, tag.FileName()), []byte(content), 0o644); err != nil {
			return err
		}
	}
	return nil
}

// Abbrev returns the test abbreviation list.
func Abbrev() *abbrev.List {
	list, err := abbrev.Read(strings.NewReader(Abbreviations))
	if err != nil {
		panic(err)
	}
	return list
}
