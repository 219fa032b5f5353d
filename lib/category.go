package lib

import "strings"

/*
	Routing of a component to one of the accumulating library buckets.
	The designator prefix decides when it can; otherwise the catalog
	category and the free-text description are scanned for keywords.
	Routing is total: anything unresolved lands in Misc.
*/

type Bucket string

const (
	BucketResistors   Bucket = "Resistors"
	BucketCapacitors  Bucket = "Capacitors"
	BucketInductors   Bucket = "Inductors"
	BucketDiodes      Bucket = "Diodes"
	BucketTransistors Bucket = "Transistors"
	BucketICs         Bucket = "ICs"
	BucketConnectors  Bucket = "Connectors"
	BucketCrystals    Bucket = "Crystals"
	BucketSwitches    Bucket = "Switches"
	BucketMisc        Bucket = "Misc"
)

func Buckets() []Bucket {
	return []Bucket{
		BucketResistors, BucketCapacitors, BucketInductors,
		BucketDiodes, BucketTransistors, BucketICs,
		BucketConnectors, BucketCrystals, BucketSwitches,
		BucketMisc,
	}
}

var prefixBuckets = map[string]Bucket{
	"R":   BucketResistors,
	"RN":  BucketResistors,
	"RV":  BucketResistors,
	"C":   BucketCapacitors,
	"CE":  BucketCapacitors,
	"L":   BucketInductors,
	"FB":  BucketInductors,
	"D":   BucketDiodes,
	"LED": BucketDiodes,
	"ZD":  BucketDiodes,
	"Q":   BucketTransistors,
	"T":   BucketTransistors,
	"U":   BucketICs,
	"IC":  BucketICs,
	"A":   BucketICs,
	"J":   BucketConnectors,
	"P":   BucketConnectors,
	"CN":  BucketConnectors,
	"X":   BucketCrystals,
	"Y":   BucketCrystals,
	"XT":  BucketCrystals,
	"SW":  BucketSwitches,
	"S":   BucketSwitches,
	"K":   BucketSwitches,
}

/*
	Keyword table consulted when the prefix is generic or unknown.
	First match wins, so the more specific words come first.
*/
var keywordBuckets = []struct {
	word   string
	bucket Bucket
}{
	{"resistor network", BucketResistors},
	{"potentiometer", BucketResistors},
	{"resistor", BucketResistors},
	{"capacitor", BucketCapacitors},
	{"inductor", BucketInductors},
	{"ferrite bead", BucketInductors},
	{"schottky", BucketDiodes},
	{"zener", BucketDiodes},
	{"diode", BucketDiodes},
	{"led", BucketDiodes},
	{"mosfet", BucketTransistors},
	{"transistor", BucketTransistors},
	{"bjt", BucketTransistors},
	{"connector", BucketConnectors},
	{"header", BucketConnectors},
	{"socket", BucketConnectors},
	{"terminal", BucketConnectors},
	{"crystal", BucketCrystals},
	{"oscillator", BucketCrystals},
	{"resonator", BucketCrystals},
	{"switch", BucketSwitches},
	{"button", BucketSwitches},
	{"relay", BucketSwitches},
	{"microcontroller", BucketICs},
	{"amplifier", BucketICs},
	{"regulator", BucketICs},
	{"converter", BucketICs},
	{"transceiver", BucketICs},
	{"driver", BucketICs},
	{"sensor", BucketICs},
	{"memory", BucketICs},
	{"logic", BucketICs},
}

/*
	Route never fails; every triple resolves to exactly one bucket.
*/
func Route(prefix, category, description string) Bucket {
	prefix = strings.ToUpper(strings.TrimSpace(prefix))
	if bucket, ok := prefixBuckets[prefix]; ok && prefix != "U" {
		return bucket
	}

	/*
		U is treated as generic: plenty of sources slap it on anything,
		so give the textual signals a chance before settling on ICs.
	*/
	haystack := strings.ToLower(category + " " + description)
	for _, entry := range keywordBuckets {
		if strings.Contains(haystack, entry.word) {
			return entry.bucket
		}
	}

	if bucket, ok := prefixBuckets[prefix]; ok {
		return bucket
	}

	return BucketMisc
}
