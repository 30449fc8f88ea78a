package reference

import (
	"sort"
	"strings"
	"unicode"

	"github.com/antzucaro/matchr"
)

// UnknownRegion is reported for constituencies missing from the table.
const UnknownRegion = "Unknown"

// fuzzyThreshold is the minimum Jaro-Winkler similarity accepted when a
// constituency has no exact entry.
const fuzzyThreshold = 0.93

var constituenciesByRegion = map[string][]string{
	"Greater Accra": {
		"Ablekuma Central", "Ablekuma North", "Ablekuma South", "Ablekuma West", "Ashaiman",
		"Ayawaso Central", "Ayawaso East", "Ayawaso North", "Ayawaso West Wuogon", "Dade Kotopon",
		"Dome Kwabenya", "Klottey Korle", "Korle Klottey", "Kpone Katamanso", "Krowor", "Ledzokuku",
		"Madina", "Odododiodio", "Okaikwei Central", "Okaikwei North", "Okaikwei South", "Tema Central",
		"Tema East", "Tema West", "Weija Gbawe", "Ada", "Sege", "Shai Osudoku", "Ningo Prampram",
		"Adentan", "Trobu", "Amasaman", "Bortianor Ngleshie Amanfro", "Anyaa Sowutuom", "Domeabra Obom",
	},
	"Ashanti": {
		"Asawase", "Bantama", "Manhyia North", "Manhyia South", "Nhyiaeso", "Subin", "Kwadaso",
		"Oforikrom", "Suame", "Old Tafo", "Asokwa", "Bosomtwe", "Ejisu", "Juaben", "Effiduase Asokore",
		"Mampong", "Ejura Sekyedumase", "Obuasi East", "Obuasi West", "Offinso North", "Offinso South",
		"Bekwai", "Fomena", "Adansi Asokwa", "New Edubease", "Afigya Kwabre North", "Afigya Kwabre South",
		"Atwima Nwabiagya North", "Atwima Nwabiagya South", "Atwima Kwanwoma", "Atwima Mponua",
		"Kumawu", "Sekyere Afram Plains", "Nsuta Kwamang Beposo", "Asante Akim Central",
		"Asante Akim North", "Asante Akim South", "Ahafo Ano North", "Ahafo Ano South East",
		"Ahafo Ano South West", "Bosome Freho", "Odotobri", "Manso Nkwanta", "Manso Adubia", "Mampong",
	},
	"Western": {
		"Takoradi", "Sekondi", "Essikado Ketan", "Effia", "Kwesimintsim", "Shama", "Ahanta West",
		"Mpohor", "Wassa East", "Tarkwa Nsuaem", "Prestea Huni Valley", "Wassa Amenfi East",
		"Wassa Amenfi Central", "Wassa Amenfi West", "Amenfi Central", "Ellembelle", "Evalue Ajomoro Gwira",
		"Jomoro", "Nzema East",
	},
	"Western North": {
		"Sefwi Wiawso", "Sefwi Akontombra", "Bodi", "Juaboso", "Bia East", "Bia West", "Suaman",
		"Aowin", "Bibiani Anhwiaso Bekwai",
	},
	"Central": {
		"Cape Coast North", "Cape Coast South", "Komenda Edina Eguafo Abirem", "Abura Asebu Kwamankese",
		"Mfantseman", "Ekumfi", "Gomoa Central", "Gomoa East", "Gomoa West", "Awutu Senya East",
		"Awutu Senya West", "Effutu", "Agona East", "Agona West", "Asikuma Odoben Brakwa",
		"Ajumako Enyan Esiam", "Assin Central", "Assin North", "Assin South", "Twifo Atti Morkwa",
		"Hemang Lower Denkyira", "Upper Denkyira East", "Upper Denkyira West",
	},
	"Eastern": {
		"New Juaben North", "New Juaben South", "Akropong", "Okere", "Nsawam Adoagyiri", "Suhum",
		"Akim Oda", "Akim Swedru", "Achiase", "Ofoase Ayirebi", "Abirem", "Abuakwa North", "Abuakwa South",
		"Atiwa East", "Atiwa West", "Fanteakwa North", "Fanteakwa South", "Kwahu East", "Kwahu South",
		"Mpraeso", "Nkawkaw", "Afram Plains North", "Afram Plains South", "Lower Manya Krobo",
		"Upper Manya Krobo", "Yilo Krobo", "Asuogyaman", "Lower West Akim", "Upper West Akim",
		"Ayensuano", "Kade", "Akwatia", "Abetifi", "Aburi Nsawam",
	},
	"Volta": {
		"Ho Central", "Ho West", "Adaklu", "Agotime Ziope", "South Dayi", "North Dayi", "Afadzato South",
		"Hohoe", "Kpando", "North Tongu", "Central Tongu", "South Tongu", "Ketu North", "Ketu South",
		"Keta", "Anlo", "Akatsi North", "Akatsi South",
	},
	"Oti": {
		"Buem", "Biakoye", "Akan", "Krachi East", "Krachi West", "Krachi Nchumuru", "Nkwanta North",
		"Nkwanta South", "Guan",
	},
	"Northern": {
		"Tamale Central", "Tamale North", "Tamale South", "Sagnarigu", "Savelugu", "Nanton", "Kumbungu",
		"Tolon", "Gushegu", "Karaga", "Yendi", "Mion", "Saboba", "Zabzugu", "Tatale Sanguli",
		"Wulensi", "Bimbilla", "Kpandai",
	},
	"Savannah": {
		"Damongo", "Daboya Mankarigu", "Yapei Kusawgu", "Bole Bamboi", "Sawla Tuna Kalba", "Salaga North",
		"Salaga South",
	},
	"North East": {
		"Nalerigu Gambaga", "Walewale", "Yagaba Kubori", "Yunyoo", "Chereponi", "Bunkpurugu",
	},
	"Upper East": {
		"Bolgatanga Central", "Bolgatanga East", "Bongo", "Navrongo Central", "Chiana Paga",
		"Builsa North", "Builsa South", "Bawku Central", "Pusiga", "Zebilla", "Binduri", "Garu",
		"Tempane", "Talensi", "Nabdam",
	},
	"Upper West": {
		"Wa Central", "Wa East", "Wa West", "Nadowli Kaleo", "Daffiama Bussie Issa", "Jirapa",
		"Lambussie", "Lawra", "Nandom", "Sissala East", "Sissala West",
	},
	"Bono": {
		"Sunyani East", "Sunyani West", "Berekum East", "Berekum West", "Dormaa Central", "Dormaa East",
		"Dormaa West", "Jaman North", "Jaman South", "Wenchi", "Tain", "Banda",
	},
	"Bono East": {
		"Techiman North", "Techiman South", "Kintampo North", "Kintampo South", "Nkoranza North",
		"Nkoranza South", "Atebubu Amantin", "Pru East", "Pru West", "Sene East", "Sene West",
	},
	"Ahafo": {
		"Asunafo North", "Asunafo South", "Asutifi North", "Asutifi South", "Tano North", "Tano South",
	},
}

// constituencyRegion is the inverted lookup keyed by normalized name.
var constituencyRegion = func() map[string]string {
	m := make(map[string]string)
	for region, names := range constituenciesByRegion {
		for _, n := range names {
			m[constituencyKey(n)] = region
		}
	}
	return m
}()

// constituencyKeys is sorted so fuzzy ties resolve the same way every run.
var constituencyKeys = func() []string {
	keys := make([]string, 0, len(constituencyRegion))
	for k := range constituencyRegion {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}()

// Regions lists Ghana's sixteen regions in alphabetical order.
var Regions = func() []string {
	out := make([]string, 0, len(constituenciesByRegion))
	for r := range constituenciesByRegion {
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}()

// RegionFor returns the region of a constituency. Lookup ignores case,
// punctuation and a trailing "Constituency", then falls back to a fuzzy
// match for spelling variants. Unmatched names yield UnknownRegion.
func RegionFor(constituency string) string {
	key := constituencyKey(constituency)
	if key == "" {
		return UnknownRegion
	}
	if r, ok := constituencyRegion[key]; ok {
		return r
	}

	best, bestScore := UnknownRegion, 0.0
	for _, k := range constituencyKeys {
		if score := matchr.JaroWinkler(key, k, false); score > bestScore {
			best, bestScore = constituencyRegion[k], score
		}
	}
	if bestScore >= fuzzyThreshold {
		return best
	}
	return UnknownRegion
}

// constituencyKey lower-cases s, turns punctuation into spaces and drops the
// "constituency" suffix.
func constituencyKey(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, s)
	fields := strings.Fields(s)
	if n := len(fields); n > 0 && fields[n-1] == "constituency" {
		fields = fields[:n-1]
	}
	return strings.Join(fields, " ")
}
