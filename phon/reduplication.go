// Copyright 2023 The suffixtab Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package phon

import "github.com/czcorpus/cnc-gokit/collections"

// reduplications lists the stems formed by doubling a root. They are
// excluded from syllable-count statistics entirely.
var reduplications = collections.NewSet(
	"ahuahu",
	"akiaki",
	"ākirikiri",
	"amuamu",
	"apoapo",
	"aruaru",
	"ātete",
	"haehae",
	"hahau",
	"hāhau",
	"hakuhaku",
	"haupapa",
	"herehere",
	"heuheu",
	"hiahia",
	"hihira",
	"hihiri",
	"hirihiri",
	"hohou",
	"hokohoko",
	"hongihongi",
	"houhou",
	"huhu",
	"huihui",
	"hukihuki",
	"hunuhunu",
	"iheuheu",
	"ihiihi",
	"kākahu",
	"kakaro",
	"kakau",
	"kaukau",
	"ketuketu",
	"kiki",
	"kikini",
	"kohikohi",
	"koko",
	"kōpenupenu",
	"kuku",
	"māharahara",
	"mahimahi",
	"mātakitaki",
	"mekemeke",
	"memeke",
	"mitimiti",
	"muimui",
	"mukumuku",
	"mutumutu",
	"nanao",
	"nekeneke",
	"ngaungau",
	"nukunuku",
	"onioni",
	"pākarukaru",
	"panipani",
	"pehipehi",
	"piupiu",
	"pōhēhē",
	"poipoi",
	"popo",
	"pōpopo",
	"poroporo",
	"purupuru",
	"rahoraho",
	"rangirangi",
	"rara",
	"rārangi",
	"rarapi",
	"rarawhi",
	"rere",
	"riri",
	"riringi",
	"rurerure",
	"rūrū",
	"ruruku",
	"tāhawahawa",
	"tahitahi",
	"taitai",
	"takapapa",
	"takitaki",
	"tāmuimui",
	"tamumu",
	"tāpapa",
	"tāpāpā",
	"tapatapa",
	"tapatapahi",
	"tātāmi",
	"tātari",
	"tatau",
	"tātāwhi",
	"tautohetohe",
	"tīkoko",
	"titi",
	"tītokotoko",
	"tohatoha",
	"tokotoko",
	"toutou",
	"tuhituhi",
	"tuitui",
	"tuketuke",
	"tukutuku",
	"tunutunu",
	"uiui",
	"uwhiuwhi",
	"wāwāhi",
	"wareware",
	"wawae",
	"wawata",
	"wehewehe",
	"wetewete",
	"whāwhā",
	"whaiwhai",
	"whakahohori",
	"whakahohoro",
	"whakahorohoro",
	"whakaipoipo",
	"whakakakara",
	"whakakopakopa",
	"whakakorokoro",
	"whakamākūkū",
	"whakamāmā",
	"whakamamae",
	"whakamārōrō",
	"whakamātaotao",
	"whakamātautau",
	"whakapaipai",
	"whakapakeke",
	"whakapakoko",
	"whakapapa",
	"whakapōhēhē",
	"whakarāpopoto",
	"whakarere",
	"whakaririki",
	"whakataetae",
	"whakatakitaki",
	"whakatākotokoto",
	"whakatangitangi",
	"whakataratara",
	"whakatata",
	"whakatikatika",
	"whakawāwā",
	"whakawhiwhi",
	"whanowhano",
	"whatiwhati",
	"whawhai",
	"whāwhāi",
	"whiriwhiri",
)

// IsReduplication tests membership in the fixed reduplicated-form list.
func IsReduplication(stem string) bool {
	return reduplications.Contains(stem)
}
