package weatherunion

// Locality coverage list published by Weather Union. Kept in sync with the
// upstream list by hand; staleness here means a stale upstream sheet, not a bug.

const (
	ZWL005764 Locality = "ZWL005764" // Delhi NCR Sarita Vihar
	ZWL008752 Locality = "ZWL008752" // Delhi NCR Faridabad Sector 41-50
	ZWL005996 Locality = "ZWL005996" // Delhi NCR New Friends Colony
	ZWL005243 Locality = "ZWL005243" // Delhi NCR Sector 26 (Noida)
	ZWL009032 Locality = "ZWL009032" // Delhi NCR New Industrial Town
	ZWL005428 Locality = "ZWL005428" // Delhi NCR Tilak Nagar
	ZWL001073 Locality = "ZWL001073" // Delhi NCR Sector 10, Gurgaon
	ZWL001319 Locality = "ZWL001319" // Delhi NCR Ashok Vihar, Delhi
	ZWL004800 Locality = "ZWL004800" // Delhi NCR Kalkaji
	ZWL003118 Locality = "ZWL003118" // Delhi NCR Sector 53
	ZWL002091 Locality = "ZWL002091" // Delhi NCR Sector 49
	ZWL002662 Locality = "ZWL002662" // Delhi NCR Vasundhara
	ZWL001404 Locality = "ZWL001404" // Delhi NCR Rajinder Nagar
	ZWL008963 Locality = "ZWL008963" // Delhi NCR Safdarjung Enclave
	ZWL006538 Locality = "ZWL006538" // Delhi NCR Connaught Place
	ZWL003075 Locality = "ZWL003075" // Delhi NCR Sector 66
	ZWL003721 Locality = "ZWL003721" // Delhi NCR Sector 57
	ZWL006396 Locality = "ZWL006396" // Delhi NCR Moti Bagh, Delhi
	ZWL004535 Locality = "ZWL004535" // Delhi NCR Patel Nagar, Delhi
	ZWL008554 Locality = "ZWL008554" // Delhi NCR Greater Noida
	ZWL004533 Locality = "ZWL004533" // Delhi NCR Karkardooma, Delhi
	ZWL002179 Locality = "ZWL002179" // Delhi NCR Tigaon
	ZWL007487 Locality = "ZWL007487" // Delhi NCR Sector 50 (Noida)
	ZWL007120 Locality = "ZWL007120" // Delhi NCR Vasant Kunj, Delhi
	ZWL007486 Locality = "ZWL007486" // Delhi NCR Dwarka, Delhi
	ZWL006287 Locality = "ZWL006287" // Delhi NCR Sector 15
	ZWL002146 Locality = "ZWL002146" // Delhi NCR Mayur Vihar Phase III
	ZWL008405 Locality = "ZWL008405" // Delhi NCR Crossing Republik
	ZWL004455 Locality = "ZWL004455" // Delhi NCR Sector 28
	ZWL005087 Locality = "ZWL005087" // Delhi NCR Palam Vihar, Gurgaon
	ZWL009648 Locality = "ZWL009648" // Delhi NCR Sector 63 (Noida)
	ZWL008317 Locality = "ZWL008317" // Delhi NCR Raj Nagar, Ghaziabad
	ZWL005878 Locality = "ZWL005878" // Delhi NCR Sector 128
	ZWL003241 Locality = "ZWL003241" // Delhi NCR Sector 56, Gurgaon
	ZWL007224 Locality = "ZWL007224" // Delhi NCR Indirapuram
	ZWL009834 Locality = "ZWL009834" // Delhi NCR Malviya Nagar
	ZWL007284 Locality = "ZWL007284" // Delhi NCR Sector 43, Gurgaon
	ZWL006738 Locality = "ZWL006738" // Delhi NCR Sector 120 (Noida)
	ZWL007329 Locality = "ZWL007329" // Delhi NCR Saket
	ZWL001752 Locality = "ZWL001752" // Delhi NCR Sector 18 (Noida)
	ZWL007594 Locality = "ZWL007594" // Delhi NCR Naraina
	ZWL006116 Locality = "ZWL006116" // Delhi NCR Patparganj
	ZWL009925 Locality = "ZWL009925" // Delhi NCR Ghitorni
	ZWL009335 Locality = "ZWL009335" // Delhi NCR Faridabad Sector 1-11
	ZWL009638 Locality = "ZWL009638" // Delhi NCR Sector 24
	ZWL005670 Locality = "ZWL005670" // Delhi NCR Rajouri Garden
	ZWL003757 Locality = "ZWL003757" // Delhi NCR Vishnu Garden
	ZWL003610 Locality = "ZWL003610" // Delhi NCR Sector 48, Gurgaon
	ZWL005971 Locality = "ZWL005971" // Delhi NCR Kirti Nagar
	ZWL003626 Locality = "ZWL003626" // Delhi NCR Faridabad Sector 81-89
	ZWL005876 Locality = "ZWL005876" // Delhi NCR GK I
	ZWL006295 Locality = "ZWL006295" // Delhi NCR Mohan Estate
	ZWL007653 Locality = "ZWL007653" // Delhi NCR Mukherjee Nagar
	ZWL006697 Locality = "ZWL006697" // Delhi NCR Mehrauli
	ZWL003259 Locality = "ZWL003259" // Delhi NCR Burari
	ZWL004759 Locality = "ZWL004759" // Delhi NCR Gaur city, Ghaziabad
	ZWL004477 Locality = "ZWL004477" // Delhi NCR GK II
	ZWL005077 Locality = "ZWL005077" // Delhi NCR Rohini
	ZWL008191 Locality = "ZWL008191" // Delhi NCR Rangpuri
	ZWL006092 Locality = "ZWL006092" // Delhi NCR Sector 46
	ZWL001549 Locality = "ZWL001549" // Delhi NCR Sector 62 (Noida)
	ZWL001036 Locality = "ZWL001036" // Delhi NCR Shalimar Bagh
	ZWL006996 Locality = "ZWL006996" // Delhi NCR Model Town
	ZWL007566 Locality = "ZWL007566" // Delhi NCR Faridabad Sector 16-20
	ZWL009852 Locality = "ZWL009852" // Delhi NCR Sector 2 (Noida)
	ZWL008648 Locality = "ZWL008648" // Delhi NCR Govindpuram
	ZWL009728 Locality = "ZWL009728" // Delhi NCR Gwal Pahari
	ZWL006868 Locality = "ZWL006868" // Delhi NCR Nehru Nagar
	ZWL002067 Locality = "ZWL002067" // Delhi NCR Chittaranjan Park
	ZWL008791 Locality = "ZWL008791" // Delhi NCR IMT Manesar
	ZWL003043 Locality = "ZWL003043" // Delhi NCR Sector 73 Z Kitchen
	ZWL004159 Locality = "ZWL004159" // Delhi NCR Sector 51
	ZWL005960 Locality = "ZWL005960" // Delhi NCR Ballabhgarh
	ZWL009293 Locality = "ZWL009293" // Delhi NCR Nangloi
	ZWL001663 Locality = "ZWL001663" // Delhi NCR Uttam Nagar
	ZWL005762 Locality = "ZWL005762" // Delhi NCR Sector 47
	ZWL005345 Locality = "ZWL005345" // Delhi NCR Paharganj
	ZWL008225 Locality = "ZWL008225" // Delhi NCR Sector 25
	ZWL001933 Locality = "ZWL001933" // Delhi NCR Pitampura
	ZWL003591 Locality = "ZWL003591" // Delhi NCR Shahdara
	ZWL007061 Locality = "ZWL007061" // Delhi NCR Sector 31
	ZWL008476 Locality = "ZWL008476" // Delhi NCR Sector 23
	ZWL009008 Locality = "ZWL009008" // Delhi NCR Sector 12 (Noida)
	ZWL005323 Locality = "ZWL005323" // Delhi NCR Mayur Vihar Phase II
	ZWL001412 Locality = "ZWL001412" // Delhi NCR Faridabad Sector 12-15
	ZWL005925 Locality = "ZWL005925" // Delhi NCR DLF PHASE 1 (SECTOR 26)
	ZWL008716 Locality = "ZWL008716" // Delhi NCR Laxmi Nagar
	ZWL009339 Locality = "ZWL009339" // Delhi NCR Karol Bagh
	ZWL009096 Locality = "ZWL009096" // Delhi NCR Chhatarpur
	ZWL006720 Locality = "ZWL006720" // Delhi NCR Paschim Vihar
	ZWL002908 Locality = "ZWL002908" // Delhi NCR Sector 1, Noida
	ZWL001186 Locality = "ZWL001186" // Delhi NCR South Extension I
	ZWL004789 Locality = "ZWL004789" // Delhi NCR Sector 18
	ZWL008978 Locality = "ZWL008978" // Delhi NCR Kamla Nagar
	ZWL007903 Locality = "ZWL007903" // Delhi NCR Janakpuri
	ZWL008897 Locality = "ZWL008897" // Delhi NCR Vikaspuri
	ZWL007431 Locality = "ZWL007431" // Delhi NCR Najafgarh
	ZWL001112 Locality = "ZWL001112" // Delhi NCR Mayur Vihar Phase 1
	ZWL008649 Locality = "ZWL008649" // Delhi NCR Sez Noida 1
	ZWL006384 Locality = "ZWL006384" // Delhi NCR Gulavali, Noida
	ZWL007840 Locality = "ZWL007840" // Delhi NCR Sector 14
	ZWL002072 Locality = "ZWL002072" // Delhi NCR Sector 76(Noida)
	ZWL003077 Locality = "ZWL003077" // Delhi NCR Green Park
	ZWL005395 Locality = "ZWL005395" // Delhi NCR Munirka
	ZWL005729 Locality = "ZWL005729" // Delhi NCR NEHRU PLACE
	ZWL005736 Locality = "ZWL005736" // Delhi NCR Lajpat Nagar
	ZWL007212 Locality = "ZWL007212" // Delhi NCR Sector 52 (Noida)
	ZWL004803 Locality = "ZWL004803" // Delhi NCR Sector 100 (Noida)
	ZWL003444 Locality = "ZWL003444" // Delhi NCR Sector 50
	ZWL008293 Locality = "ZWL008293" // Delhi NCR Dilshad Garden
	ZWL007308 Locality = "ZWL007308" // Delhi NCR Sector 29, Gurgaon
	ZWL008219 Locality = "ZWL008219" // Delhi NCR SUSHANT LOK 1
	ZWL006234 Locality = "ZWL006234" // Delhi NCR SAHIBABAD
	ZWL007666 Locality = "ZWL007666" // Delhi NCR Sector 45 (Noida)
	ZWL002490 Locality = "ZWL002490" // Delhi NCR Sector 84
	ZWL007138 Locality = "ZWL007138" // Delhi NCR Sector 7, Gurgaon
	ZWL009706 Locality = "ZWL009706" // Delhi NCR Sector 27
	ZWL001267 Locality = "ZWL001267" // Delhi NCR Hauz Khas
	ZWL003552 Locality = "ZWL003552" // Delhi NCR Jangpura
	ZWL008401 Locality = "ZWL008401" // Delhi NCR Sector 52, Gurgaon
	ZWL001758 Locality = "ZWL001758" // Delhi NCR Vaishali, Ghaziabad
	ZWL003128 Locality = "ZWL003128" // Kolkata Shibpur
	ZWL004322 Locality = "ZWL004322" // Kolkata Kalyani 1, Kolkata
	ZWL002495 Locality = "ZWL002495" // Kolkata Bansdroni
	ZWL009257 Locality = "ZWL009257" // Kolkata Bow Barracks
	ZWL005435 Locality = "ZWL005435" // Kolkata Baranagar, Kolkata
	ZWL007041 Locality = "ZWL007041" // Kolkata Sonarpur, Kolkata
	ZWL002918 Locality = "ZWL002918" // Kolkata Ballygunge
	ZWL003388 Locality = "ZWL003388" // Kolkata Sinthi, Kolkata
	ZWL008806 Locality = "ZWL008806" // Kolkata Salt Lake 2
	ZWL008635 Locality = "ZWL008635" // Kolkata Alipore
	ZWL002312 Locality = "ZWL002312" // Kolkata Baguihati
	ZWL001499 Locality = "ZWL001499" // Kolkata South Dum Dum
	ZWL003315 Locality = "ZWL003315" // Kolkata Purba Barisha
	ZWL003794 Locality = "ZWL003794" // Kolkata Jadavpur
	ZWL006574 Locality = "ZWL006574" // Kolkata Tollygunge
	ZWL004138 Locality = "ZWL004138" // Kolkata Shyam Bazar
	ZWL009022 Locality = "ZWL009022" // Kolkata Behala
	ZWL003271 Locality = "ZWL003271" // Kolkata Chandannagar, Kolkata
	ZWL003951 Locality = "ZWL003951" // Kolkata Barrackpore
	ZWL003915 Locality = "ZWL003915" // Kolkata East Kolkata Township
	ZWL006750 Locality = "ZWL006750" // Kolkata Bhowanipore
	ZWL008828 Locality = "ZWL008828" // Kolkata Elgin
	ZWL008426 Locality = "ZWL008426" // Kolkata Howrah
	ZWL007323 Locality = "ZWL007323" // Kolkata New Alipore
	ZWL006266 Locality = "ZWL006266" // Kolkata Barasat
	ZWL008393 Locality = "ZWL008393" // Kolkata New Town (kolkata)
	ZWL007966 Locality = "ZWL007966" // Kolkata Uttarpara
	ZWL001039 Locality = "ZWL001039" // Kolkata Santoshpur
	ZWL003882 Locality = "ZWL003882" // Kolkata Liluah
	ZWL004925 Locality = "ZWL004925" // Kolkata Rajarhat
	ZWL005244 Locality = "ZWL005244" // Kolkata Park Street area
	ZWL003687 Locality = "ZWL003687" // Kolkata Baghajatin Colony
	ZWL008120 Locality = "ZWL008120" // Kolkata Shrirampur
	ZWL007514 Locality = "ZWL007514" // Kolkata Chhota Jagulia
	ZWL003935 Locality = "ZWL003935" // Kolkata Dum Dum
	ZWL002931 Locality = "ZWL002931" // Kolkata Kestopur
	ZWL006521 Locality = "ZWL006521" // Kolkata Sodepur
	ZWL005558 Locality = "ZWL005558" // Kolkata Nimta
	ZWL005174 Locality = "ZWL005174" // Kolkata Shapoorji
	ZWL002488 Locality = "ZWL002488" // Kolkata Barabazar Market
	ZWL007934 Locality = "ZWL007934" // Kolkata Salt Lake 1
	ZWL001584 Locality = "ZWL001584" // Kolkata Tangra
	ZWL005429 Locality = "ZWL005429" // Kolkata Gariahat
	ZWL005121 Locality = "ZWL005121" // Kolkata Santragachi
	ZWL007830 Locality = "ZWL007830" // Kolkata Garia
	ZWL008991 Locality = "ZWL008991" // Kolkata Chinsurah, Kolkata
	ZWL009194 Locality = "ZWL009194" // Kolkata Kankurgachi
	ZWL004722 Locality = "ZWL004722" // Kolkata Kasba
	ZWL006536 Locality = "ZWL006536" // Mumbai Mira Road East
	ZWL004934 Locality = "ZWL004934" // Mumbai Kandivali West
	ZWL004821 Locality = "ZWL004821" // Mumbai Boisar, Mumbai
	ZWL007249 Locality = "ZWL007249" // Mumbai Bhiwandi
	ZWL001164 Locality = "ZWL001164" // Mumbai Panvel
	ZWL009537 Locality = "ZWL009537" // Mumbai Kopar Khairane (Navi Mumbai)
	ZWL007275 Locality = "ZWL007275" // Mumbai Vashi
	ZWL002556 Locality = "ZWL002556" // Mumbai Titwala, Mumbai
	ZWL006937 Locality = "ZWL006937" // Mumbai Kandivali East
	ZWL008636 Locality = "ZWL008636" // Mumbai Nalasopara
	ZWL003995 Locality = "ZWL003995" // Mumbai Lower Parel
	ZWL006938 Locality = "ZWL006938" // Mumbai Goregaon East
	ZWL008550 Locality = "ZWL008550" // Mumbai Santacruz East
	ZWL004494 Locality = "ZWL004494" // Mumbai Ghatkopar East, Mumbai
	ZWL003708 Locality = "ZWL003708" // Mumbai Palava
	ZWL008711 Locality = "ZWL008711" // Mumbai Malad West
	ZWL005991 Locality = "ZWL005991" // Mumbai Borivali East
	ZWL002865 Locality = "ZWL002865" // Mumbai Kalyan,West,Mumbai
	ZWL004749 Locality = "ZWL004749" // Mumbai Santacruz West
	ZWL001274 Locality = "ZWL001274" // Mumbai Badlapur, Mumbai
	ZWL007699 Locality = "ZWL007699" // Mumbai Ambernath
	ZWL001764 Locality = "ZWL001764" // Mumbai Marine lines
	ZWL002921 Locality = "ZWL002921" // Mumbai Mulund West
	ZWL001410 Locality = "ZWL001410" // Mumbai Airoli
	ZWL009757 Locality = "ZWL009757" // Mumbai Kharghar (Navi Mumbai)
	ZWL002059 Locality = "ZWL002059" // Mumbai Ulhasnagar (Mumbai)
	ZWL001058 Locality = "ZWL001058" // Mumbai Ghatkopar West, Mumbai
	ZWL006995 Locality = "ZWL006995" // Mumbai Bandra West
	ZWL004692 Locality = "ZWL004692" // Mumbai Dadar West
	ZWL007667 Locality = "ZWL007667" // Mumbai Andheri West
	ZWL009338 Locality = "ZWL009338" // Mumbai Vile Parle West
	ZWL009167 Locality = "ZWL009167" // Mumbai Byculla
	ZWL006032 Locality = "ZWL006032" // Mumbai Vasai
	ZWL007397 Locality = "ZWL007397" // Mumbai Kalyan,East (Mumbai)
	ZWL009360 Locality = "ZWL009360" // Mumbai Ulwe, Mumbai
	ZWL002205 Locality = "ZWL002205" // Mumbai Fort
	ZWL008975 Locality = "ZWL008975" // Mumbai Andheri East
	ZWL009252 Locality = "ZWL009252" // Mumbai Chembur
	ZWL002558 Locality = "ZWL002558" // Mumbai Palghar, Mumbai
	ZWL002742 Locality = "ZWL002742" // Mumbai Mumbra, Mumbai
	ZWL004971 Locality = "ZWL004971" // Mumbai Mulund East
	ZWL008348 Locality = "ZWL008348" // Mumbai Shirdhon, Mumbai
	ZWL001344 Locality = "ZWL001344" // Mumbai Virar
	ZWL007606 Locality = "ZWL007606" // Mumbai Tardeo
	ZWL005697 Locality = "ZWL005697" // Mumbai Bandra East
	ZWL005442 Locality = "ZWL005442" // Mumbai Thane West
	ZWL004189 Locality = "ZWL004189" // Mumbai Kurla West
	ZWL005000 Locality = "ZWL005000" // Mumbai Goregaon West
	ZWL002056 Locality = "ZWL002056" // Mumbai Hiranandani Estate
	ZWL009826 Locality = "ZWL009826" // Mumbai Dombivli
	ZWL007889 Locality = "ZWL007889" // Mumbai Bhandup West
	ZWL008977 Locality = "ZWL008977" // Mumbai Kamothe
	ZWL006622 Locality = "ZWL006622" // Mumbai Powai, Mumbai
	ZWL002074 Locality = "ZWL002074" // Mumbai Naupada
	ZWL008874 Locality = "ZWL008874" // Mumbai Bhayandar West
	ZWL001334 Locality = "ZWL001334" // Mumbai Vileparle East
	ZWL008378 Locality = "ZWL008378" // Mumbai Sion
	ZWL007690 Locality = "ZWL007690" // Mumbai Nerul (Navi Mumbai)
	ZWL007706 Locality = "ZWL007706" // Mumbai Dahisar West
	ZWL005320 Locality = "ZWL005320" // Mumbai Colaba
	ZWL006544 Locality = "ZWL006544" // Mumbai Mahim
	ZWL002686 Locality = "ZWL002686" // Mumbai Wadala
	ZWL001089 Locality = "ZWL001089" // Mumbai Borivali West
	ZWL008360 Locality = "ZWL008360" // Mumbai Palava Lakeshore,Mumbai
	ZWL003467 Locality = "ZWL003467" // Bengaluru Banashankari
	ZWL004900 Locality = "ZWL004900" // Bengaluru Rajarajeshwari Nagar
	ZWL005530 Locality = "ZWL005530" // Bengaluru JP Nagar
	ZWL007643 Locality = "ZWL007643" // Bengaluru Mahadevapura
	ZWL003159 Locality = "ZWL003159" // Bengaluru Jalahalli
	ZWL002736 Locality = "ZWL002736" // Bengaluru RT Nagar
	ZWL006369 Locality = "ZWL006369" // Bengaluru KR Puram
	ZWL006274 Locality = "ZWL006274" // Bengaluru Electronic City
	ZWL005375 Locality = "ZWL005375" // Bengaluru Vijayanagar
	ZWL008600 Locality = "ZWL008600" // Bengaluru Marathahalli
	ZWL002292 Locality = "ZWL002292" // Bengaluru Sarjapur road
	ZWL004341 Locality = "ZWL004341" // Bengaluru Brookefields
	ZWL007633 Locality = "ZWL007633" // Bengaluru Whitefield
	ZWL009212 Locality = "ZWL009212" // Bengaluru Nagavara
	ZWL007628 Locality = "ZWL007628" // Bengaluru New BEL Road
	ZWL001156 Locality = "ZWL001156" // Bengaluru Koramangala
	ZWL004924 Locality = "ZWL004924" // Bengaluru Bannerghatta Road, Bangalore
	ZWL009229 Locality = "ZWL009229" // Bengaluru Aavalahalli
	ZWL005576 Locality = "ZWL005576" // Bengaluru BIAL Airport Road
	ZWL006658 Locality = "ZWL006658" // Bengaluru Yelahanka
	ZWL002882 Locality = "ZWL002882" // Bengaluru Kadugodi
	ZWL006631 Locality = "ZWL006631" // Bengaluru Kammanahalli
	ZWL001196 Locality = "ZWL001196" // Bengaluru HSR Layout
	ZWL006600 Locality = "ZWL006600" // Bengaluru BTM Layout
	ZWL006854 Locality = "ZWL006854" // Bengaluru Varthur
	ZWL001273 Locality = "ZWL001273" // Bengaluru Indiranagar
	ZWL008105 Locality = "ZWL008105" // Bengaluru Jayanagar
	ZWL005206 Locality = "ZWL005206" // Bengaluru Sahakaranagar
	ZWL008797 Locality = "ZWL008797" // Bengaluru Devanahalli, Bangalore
	ZWL001962 Locality = "ZWL001962" // Bengaluru MG Road
	ZWL006844 Locality = "ZWL006844" // Bengaluru Rajajinagar
	ZWL004164 Locality = "ZWL004164" // Bengaluru Bellandur
	ZWL007698 Locality = "ZWL007698" // Pune NIGDI(Pune)
	ZWL005773 Locality = "ZWL005773" // Pune Bibvewadi (Pune)
	ZWL009577 Locality = "ZWL009577" // Pune Nanded-Nahre
	ZWL002253 Locality = "ZWL002253" // Pune Bhosari (Pune)
	ZWL003498 Locality = "ZWL003498" // Pune Camp Area
	ZWL004311 Locality = "ZWL004311" // Pune Magarpatta
	ZWL007801 Locality = "ZWL007801" // Pune Pimpri
	ZWL008134 Locality = "ZWL008134" // Pune Yerwada
	ZWL009625 Locality = "ZWL009625" // Pune Kalyani Nagar (Pune)
	ZWL001627 Locality = "ZWL001627" // Pune Sus, Pune
	ZWL006236 Locality = "ZWL006236" // Pune Bavdhan
	ZWL006743 Locality = "ZWL006743" // Pune Viman nagar
	ZWL004927 Locality = "ZWL004927" // Pune Aundh (Pune)
	ZWL008370 Locality = "ZWL008370" // Pune Katraj (Pune)
	ZWL004523 Locality = "ZWL004523" // Pune
	ZWL001778 Locality = "ZWL001778" // Pune Dhanori
	ZWL003386 Locality = "ZWL003386" // Pune Dehu Road
	ZWL009157 Locality = "ZWL009157" // Pune Koregaon Park (Pune)
	ZWL004962 Locality = "ZWL004962" // Pune Hinjewadi - Phase 2
	ZWL005340 Locality = "ZWL005340" // Pune
	ZWL009671 Locality = "ZWL009671" // Pune Manas Lake, Pune
	ZWL008921 Locality = "ZWL008921" // Pune Sadashiv Peth
	ZWL008940 Locality = "ZWL008940" // Pune Ghorpadi (Pune)
	ZWL009874 Locality = "ZWL009874" // Pune Pashan (Pune)
	ZWL006660 Locality = "ZWL006660" // Pune SP Infocity, Pune
	ZWL003813 Locality = "ZWL003813" // Pune Manjri,Pune
	ZWL007471 Locality = "ZWL007471" // Pune Khadki, Pune
	ZWL009602 Locality = "ZWL009602" // Pune Kothrud (Pune)
	ZWL002208 Locality = "ZWL002208" // Pune Sinhagad Road(Pune)
	ZWL007895 Locality = "ZWL007895" // Pune New Sangvi, Pune
	ZWL003099 Locality = "ZWL003099" // Pune Nimgaon, Pune
	ZWL004575 Locality = "ZWL004575" // Pune Wagholi
	ZWL004513 Locality = "ZWL004513" // Pune Keshavnagar, Pune
	ZWL008983 Locality = "ZWL008983" // Pune Baner (Pune)
	ZWL005520 Locality = "ZWL005520" // Pune Warje (Pune)
	ZWL003300 Locality = "ZWL003300" // Pune Mundwa, Pune
	ZWL001963 Locality = "ZWL001963" // Pune Chakan
	ZWL002422 Locality = "ZWL002422" // Pune Shivaji Nagar (Pune)
	ZWL005088 Locality = "ZWL005088" // Pune Yewalewadi, Pune
	ZWL003014 Locality = "ZWL003014" // Pune Bopkhel, Pune
	ZWL001472 Locality = "ZWL001472" // Pune Kharadi
	ZWL004339 Locality = "ZWL004339" // Pune Talegaon Dabhade
	ZWL003817 Locality = "ZWL003817" // Pune Hinjewadi - Phase 1
	ZWL007925 Locality = "ZWL007925" // Pune Wanowrie-Kondhwa
	ZWL003370 Locality = "ZWL003370" // Hyderabad Nagole
	ZWL002088 Locality = "ZWL002088" // Hyderabad Attapur
	ZWL006702 Locality = "ZWL006702" // Hyderabad Peerzadiguda
	ZWL008776 Locality = "ZWL008776" // Hyderabad Begumpet
	ZWL003918 Locality = "ZWL003918" // Hyderabad Suraram, Hyderabad
	ZWL004079 Locality = "ZWL004079" // Hyderabad Banjara Hills
	ZWL008309 Locality = "ZWL008309" // Hyderabad Alwal
	ZWL002433 Locality = "ZWL002433" // Hyderabad Sainikpuri
	ZWL007390 Locality = "ZWL007390" // Hyderabad Saroor Nagar
	ZWL004767 Locality = "ZWL004767" // Hyderabad Karkhana
	ZWL006016 Locality = "ZWL006016" // Hyderabad Kompally
	ZWL003283 Locality = "ZWL003283" // Hyderabad Himayatnagar
	ZWL007311 Locality = "ZWL007311" // Hyderabad Medchal Road
	ZWL005919 Locality = "ZWL005919" // Hyderabad Kukatpally
	ZWL001822 Locality = "ZWL001822" // Hyderabad Amberpet
	ZWL008208 Locality = "ZWL008208" // Hyderabad Jeedimetla
	ZWL001362 Locality = "ZWL001362" // Hyderabad Gachibowli
	ZWL002162 Locality = "ZWL002162" // Hyderabad LB Nagar
	ZWL009712 Locality = "ZWL009712" // Hyderabad Dilsukhnagar
	ZWL005963 Locality = "ZWL005963" // Hyderabad Masab Tank
	ZWL008297 Locality = "ZWL008297" // Hyderabad Bachupally
	ZWL005424 Locality = "ZWL005424" // Hyderabad Manikonda
	ZWL008585 Locality = "ZWL008585" // Hyderabad Shamshabad
	ZWL008599 Locality = "ZWL008599" // Hyderabad Miyapur
	ZWL006535 Locality = "ZWL006535" // Hyderabad Hayath Nagar, Hyderabad
	ZWL006545 Locality = "ZWL006545" // Hyderabad Sangareddy, Hyderabad
	ZWL009719 Locality = "ZWL009719" // Hyderabad JNTU
	ZWL008890 Locality = "ZWL008890" // Hyderabad Serilingampally
	ZWL007119 Locality = "ZWL007119" // Hyderabad Nizampet
	ZWL004747 Locality = "ZWL004747" // Hyderabad Q City, Hyderabad
	ZWL004802 Locality = "ZWL004802" // Hyderabad Madhapur
	ZWL004665 Locality = "ZWL004665" // Hyderabad Narayanguda
	ZWL005999 Locality = "ZWL005999" // Hyderabad ECIL
	ZWL003360 Locality = "ZWL003360" // Hyderabad Toli Chowki
	ZWL007187 Locality = "ZWL007187" // Hyderabad Kondapur
	ZWL007344 Locality = "ZWL007344" // Hyderabad Charminar
	ZWL008438 Locality = "ZWL008438" // Hyderabad Sivarampalli
	ZWL005494 Locality = "ZWL005494" // Hyderabad Tarnaka
	ZWL009519 Locality = "ZWL009519" // Hyderabad Moosapet
	ZWL001687 Locality = "ZWL001687" // Hyderabad Patancheru, Hyderabad
	ZWL005569 Locality = "ZWL005569" // Hyderabad Vanasthali Puram
	ZWL003027 Locality = "ZWL003027" // Hyderabad Ameerpet
	ZWL001337 Locality = "ZWL001337" // Hyderabad Uppal
	ZWL001579 Locality = "ZWL001579" // Hyderabad Malakpet
	ZWL006699 Locality = "ZWL006699" // Hyderabad Hafiz Baba Nagar
	ZWL008512 Locality = "ZWL008512" // Hyderabad Mokila, Hyderabad
	ZWL006789 Locality = "ZWL006789" // Chennai Potheri
	ZWL004297 Locality = "ZWL004297" // Chennai Pallavaram
	ZWL005190 Locality = "ZWL005190" // Chennai Nungambakkam
	ZWL003967 Locality = "ZWL003967" // Chennai Anna Nagar, Chennai
	ZWL008996 Locality = "ZWL008996" // Chennai Perambur
	ZWL005857 Locality = "ZWL005857" // Chennai Mogappair, Chennai
	ZWL006232 Locality = "ZWL006232" // Chennai Royapuram
	ZWL008548 Locality = "ZWL008548" // Chennai Mugalivakkam
	ZWL006053 Locality = "ZWL006053" // Chennai Porur
	ZWL001398 Locality = "ZWL001398" // Chennai Redhills
	ZWL001701 Locality = "ZWL001701" // Chennai Tambaram
	ZWL008876 Locality = "ZWL008876" // Chennai Avadi
	ZWL003387 Locality = "ZWL003387" // Chennai Kilpauk
	ZWL007059 Locality = "ZWL007059" // Chennai Ashok Nagar (CHENNAI)
	ZWL006520 Locality = "ZWL006520" // Chennai Adyar
	ZWL001210 Locality = "ZWL001210" // Chennai Alwarpet
	ZWL007171 Locality = "ZWL007171" // Chennai Selaiyur
	ZWL006329 Locality = "ZWL006329" // Chennai Thandalam, Chennai
	ZWL004233 Locality = "ZWL004233" // Chennai Sholinganallur
	ZWL007209 Locality = "ZWL007209" // Chennai Ambattur
	ZWL003452 Locality = "ZWL003452" // Chennai Medavakkam
	ZWL007176 Locality = "ZWL007176" // Chennai Poonamallee
	ZWL009897 Locality = "ZWL009897" // Chennai Minjur, Chennai
	ZWL004882 Locality = "ZWL004882" // Chennai Urapakkam
	ZWL006156 Locality = "ZWL006156" // Chennai Velachery
	ZWL001141 Locality = "ZWL001141" // Chennai Navallur
	ZWL004431 Locality = "ZWL004431" // Chennai Vadapalani
	ZWL001516 Locality = "ZWL001516" // Chennai T Nagar
	ZWL003425 Locality = "ZWL003425" // Lucknow Hazratganj
	ZWL006490 Locality = "ZWL006490" // Lucknow Aminabad
	ZWL009091 Locality = "ZWL009091" // Lucknow Chowk
	ZWL003030 Locality = "ZWL003030" // Lucknow Telibagh, Lucknow
	ZWL004978 Locality = "ZWL004978" // Lucknow Husainganj
	ZWL009177 Locality = "ZWL009177" // Lucknow Jankipuram
	ZWL004436 Locality = "ZWL004436" // Lucknow Arjunganj
	ZWL005470 Locality = "ZWL005470" // Lucknow Chinhat, Lucknow
	ZWL001500 Locality = "ZWL001500" // Lucknow Mahanagar
	ZWL003371 Locality = "ZWL003371" // Lucknow Ashiyana
	ZWL003635 Locality = "ZWL003635" // Lucknow Indira Nagar, Lucknow
	ZWL003320 Locality = "ZWL003320" // Lucknow Vasant Kunj, Lucknow
	ZWL009682 Locality = "ZWL009682" // Lucknow Rajajipuram
	ZWL002273 Locality = "ZWL002273" // Lucknow Gomti Nagar
	ZWL002331 Locality = "ZWL002331" // Lucknow Alambagh
	ZWL007731 Locality = "ZWL007731" // Lucknow Aliganj, Lucknow
	ZWL007011 Locality = "ZWL007011" // Lucknow Kalyanpur
	ZWL003768 Locality = "ZWL003768" // Kochi Eroor
	ZWL005555 Locality = "ZWL005555" // Kochi Kakkanad
	ZWL002986 Locality = "ZWL002986" // Kochi Nedumbassery,Kochi
	ZWL004273 Locality = "ZWL004273" // Kochi North Paravur, Kochi
	ZWL005425 Locality = "ZWL005425" // Kochi Aluva, Kochi
	ZWL004691 Locality = "ZWL004691" // Kochi Ambalamugal
	ZWL001981 Locality = "ZWL001981" // Kochi Kalamassery
	ZWL003786 Locality = "ZWL003786" // Kochi Kaloor
	ZWL009487 Locality = "ZWL009487" // Kochi Perumbavoor,Kochi
	ZWL007216 Locality = "ZWL007216" // Kochi Thiruvankulam
	ZWL002327 Locality = "ZWL002327" // Kochi Vypin, Kochi
	ZWL006873 Locality = "ZWL006873" // Kochi Ernakulam
	ZWL004591 Locality = "ZWL004591" // Kochi Fort Kochi
	ZWL005082 Locality = "ZWL005082" // Jaipur Mansarovar-2
	ZWL003863 Locality = "ZWL003863" // Jaipur Tonk road 2
	ZWL009286 Locality = "ZWL009286" // Jaipur Jagatpura
	ZWL009458 Locality = "ZWL009458" // Jaipur Shyam Nagar
	ZWL003704 Locality = "ZWL003704" // Jaipur C Scheme
	ZWL003606 Locality = "ZWL003606" // Jaipur Lal Kothi
	ZWL009569 Locality = "ZWL009569" // Jaipur Pink City
	ZWL001750 Locality = "ZWL001750" // Jaipur Vaishali Nagar
	ZWL002751 Locality = "ZWL002751" // Jaipur Malviya Nagar
	ZWL005080 Locality = "ZWL005080" // Jaipur Sodala
	ZWL008680 Locality = "ZWL008680" // Jaipur Vidhyadhar Nagar
	ZWL008249 Locality = "ZWL008249" // Jaipur Raja Park
	ZWL008915 Locality = "ZWL008915" // Jaipur Shastri Nagar
	ZWL006372 Locality = "ZWL006372" // Jaipur Pratap Nagar
	ZWL003133 Locality = "ZWL003133" // Ahmedabad Paldi
	ZWL002302 Locality = "ZWL002302" // Ahmedabad Shahibag
	ZWL003747 Locality = "ZWL003747" // Ahmedabad Navrangpura
	ZWL002503 Locality = "ZWL002503" // Ahmedabad Chandkheda
	ZWL005979 Locality = "ZWL005979" // Ahmedabad Science-City Sola
	ZWL005987 Locality = "ZWL005987" // Ahmedabad Sector 16, Gandhinagar
	ZWL001959 Locality = "ZWL001959" // Ahmedabad Vastrapur
	ZWL007404 Locality = "ZWL007404" // Ahmedabad Prahlad Nagar
	ZWL001898 Locality = "ZWL001898" // Ahmedabad Nikol
	ZWL002250 Locality = "ZWL002250" // Ahmedabad Infocity, Gandhinagar
	ZWL004415 Locality = "ZWL004415" // Ahmedabad Naranpura
	ZWL006288 Locality = "ZWL006288" // Ahmedabad Bopal
	ZWL009182 Locality = "ZWL009182" // Ahmedabad Maninagar
	ZWL009990 Locality = "ZWL009990" // Ahmedabad Bodakdev
	ZWL003455 Locality = "ZWL003455" // Ahmedabad Gota
	ZWL007561 Locality = "ZWL007561" // Chandigarh Sector 15 (Chandigarh)
	ZWL006687 Locality = "ZWL006687" // Chandigarh Sector 8 (Chandigarh)
	ZWL001934 Locality = "ZWL001934" // Chandigarh Manimajra (Chandigarh)
	ZWL003936 Locality = "ZWL003936" // Chandigarh Industrial Area Phase I (Chandigarh)
	ZWL004716 Locality = "ZWL004716" // Chandigarh Sector 59 (Chandigarh)
	ZWL002303 Locality = "ZWL002303" // Chandigarh Sector 20, Panchkula
	ZWL009521 Locality = "ZWL009521" // 9 nd Panchkula
	ZWL006817 Locality = "ZWL006817" // Chandigarh Sector 28 (Chandigarh)
	ZWL003496 Locality = "ZWL003496" // Chandigarh Phase 10 Mohali
	ZWL009894 Locality = "ZWL009894" // Chandigarh Gillco, Chandigarh
	ZWL004101 Locality = "ZWL004101" // Chandigarh Sector 46 (Chandigarh)
	ZWL003262 Locality = "ZWL003262" // Chandigarh Sector 70 (Chandigarh)
	ZWL009430 Locality = "ZWL009430" // Chandigarh VIP Road, Zirakpur
	ZWL004196 Locality = "ZWL004196" // Chandigarh VR Mall
	ZWL003093 Locality = "ZWL003093" // Chandigarh Sector 35 (Chandigarh)
	ZWL009406 Locality = "ZWL009406" // Chandigarh Sector 22 (Chandigarh)
	ZWL002150 Locality = "ZWL002150" // Goa Verna, Goa
	ZWL008519 Locality = "ZWL008519" // Goa Mapusa, Goa
	ZWL004452 Locality = "ZWL004452" // Goa Calangute, Goa
	ZWL006556 Locality = "ZWL006556" // Goa Majorda, Goa
	ZWL002137 Locality = "ZWL002137" // Goa Upper panaji, Goa
	ZWL005093 Locality = "ZWL005093" // Goa Ponda, Goa
	ZWL002142 Locality = "ZWL002142" // Goa Margao, Goa
	ZWL004621 Locality = "ZWL004621" // Goa Vasco, Goa
	ZWL006403 Locality = "ZWL006403" // Goa Morjim, Goa
	ZWL005568 Locality = "ZWL005568" // Goa Porvorim, Goa
	ZWL009021 Locality = "ZWL009021" // Ludhiana Sector 32, Ludhiana
	ZWL006208 Locality = "ZWL006208" // Ludhiana Civil Lines, Ludhiana
	ZWL006788 Locality = "ZWL006788" // Ludhiana Sarabha Nagar, Ludhiana
	ZWL005256 Locality = "ZWL005256" // Ludhiana BRS Nagar, Ludhiana
	ZWL001163 Locality = "ZWL001163" // Ludhiana Model Town, Ludhiana
	ZWL003304 Locality = "ZWL003304" // Ludhiana Ganesh Nagar, Ludhiana
	ZWL003119 Locality = "ZWL003119" // Ludhiana Dugri,Ludhiana
	ZWL006981 Locality = "ZWL006981" // Guwahati Pathar Quarry, Guwahati
	ZWL006537 Locality = "ZWL006537" // Guwahati Basistha-Lokhra, Guwahati
	ZWL009407 Locality = "ZWL009407" // Guwahati North Guwahati, Guwahati
	ZWL004763 Locality = "ZWL004763" // Guwahati Dharapur, Guwahati
	ZWL007095 Locality = "ZWL007095" // Guwahati Lal Ganesh - Kahilipara, Guwahati
	ZWL002105 Locality = "ZWL002105" // Guwahati Paltan-Bazar, Guwahati
	ZWL003362 Locality = "ZWL003362" // Guwahati Azara, Guwahati
	ZWL002491 Locality = "ZWL002491" // Guwahati Changsari, Guwahati
	ZWL005319 Locality = "ZWL005319" // Guwahati Maligaon - Jalukbari, Guwahati
	ZWL005708 Locality = "ZWL005708" // Guwahati Zoo Tiniali - Christian basti
	ZWL001780 Locality = "ZWL001780" // Amritsar Himatpura, Amritsar
	ZWL008281 Locality = "ZWL008281" // Amritsar Rasulpur, Amritsar
	ZWL004590 Locality = "ZWL004590" // Amritsar Ranjit Avenue, Amritsar
	ZWL002073 Locality = "ZWL002073" // Amritsar White Avenue, Amritsar
	ZWL005826 Locality = "ZWL005826" // Amritsar Chheharta, Amritsar
	ZWL007456 Locality = "ZWL007456" // Amritsar Hall Bazar, Amritsar
	ZWL008755 Locality = "ZWL008755" // Bhopal Ashoka Garden, Bhopal
	ZWL009428 Locality = "ZWL009428" // Bhopal Shahpura,Bhopal
	ZWL006900 Locality = "ZWL006900" // Bhopal Airport Area, Bhopal
	ZWL002615 Locality = "ZWL002615" // Bhopal TT Nagar, Bhopal
	ZWL003463 Locality = "ZWL003463" // Bhopal BHEL, Bhopal
	ZWL002872 Locality = "ZWL002872" // Bhopal MP Nagar,Bhopal
	ZWL005836 Locality = "ZWL005836" // Bhopal Hoshangabad Road, Bhopal
	ZWL003417 Locality = "ZWL003417" // s Mall, Bhopal
	ZWL001466 Locality = "ZWL001466" // Visakhapatnam NAD, Vizag
	ZWL003024 Locality = "ZWL003024" // Visakhapatnam Gajuwaka
	ZWL004755 Locality = "ZWL004755" // Visakhapatnam Dwaraka Nagar
	ZWL009959 Locality = "ZWL009959" // Visakhapatnam Madhurawada
	ZWL007491 Locality = "ZWL007491" // Bhubaneswar Madhusudan Nagar, Bhubaneswar
	ZWL003084 Locality = "ZWL003084" // Bhubaneswar Kalinga Nagar, Bhubneshwar
	ZWL003270 Locality = "ZWL003270" // Bhubaneswar Nayapalli, Bhubneshwar
	ZWL007379 Locality = "ZWL007379" // Bhubaneswar Sahid Nagar, Bhubaneshwar
	ZWL001823 Locality = "ZWL001823" // Bhubaneswar Lakshmi Sagar, Bhubneshwar
	ZWL004098 Locality = "ZWL004098" // Bhubaneswar Khandagiri, Bhubneshwar
	ZWL008906 Locality = "ZWL008906" // Bhubaneswar Jagmohan Nagar, Bhubaneswar
	ZWL002821 Locality = "ZWL002821" // Bhubaneswar Kharabela Nagar, Bhubaneswar
	ZWL009572 Locality = "ZWL009572" // Bhubaneswar Chandrasekharpur, Bhubaneswar
	ZWL005652 Locality = "ZWL005652" // Bhubaneswar Patia, Bhubneshwar
	ZWL003661 Locality = "ZWL003661" // Coimbatore Gandhipuram, Coimbatore
	ZWL005742 Locality = "ZWL005742" // Coimbatore Vadavalli
	ZWL008653 Locality = "ZWL008653" // Coimbatore RS Puram, Coimbatore
	ZWL002703 Locality = "ZWL002703" // Coimbatore Racecourse, Coimbatore
	ZWL009668 Locality = "ZWL009668" // Coimbatore Saibaba Colony, Coimbatore
	ZWL007527 Locality = "ZWL007527" // Coimbatore Peelamedu, Coimbatore
	ZWL005468 Locality = "ZWL005468" // Coimbatore Podanur, Coimbatore
	ZWL004408 Locality = "ZWL004408" // Coimbatore Kunniamuthur, Coimbatore
	ZWL008265 Locality = "ZWL008265" // Coimbatore Ondipudur, Coimbatore
	ZWL007600 Locality = "ZWL007600" // Coimbatore Koundampalayam
	ZWL002147 Locality = "ZWL002147" // Coimbatore Saravanampatty
	ZWL009595 Locality = "ZWL009595" // Coimbatore Ganapathypudur, Coimbatore
	ZWL001279 Locality = "ZWL001279" // Coimbatore Sitra, and Singanallur, Coimbatore
	ZWL006449 Locality = "ZWL006449" // Mangalore South Mangalore
	ZWL009478 Locality = "ZWL009478" // Mangalore Thokkattu, Mangalore
	ZWL002354 Locality = "ZWL002354" // Vadodara Waghodia
	ZWL004097 Locality = "ZWL004097" // Vadodara Fatehgunj
	ZWL009713 Locality = "ZWL009713" // Vadodara Nizampura
	ZWL008938 Locality = "ZWL008938" // Vadodara Diwalipura
	ZWL004439 Locality = "ZWL004439" // Vadodara Akota
	ZWL002446 Locality = "ZWL002446" // Vadodara Manjalpur, Vadodara
	ZWL008232 Locality = "ZWL008232" // Vadodara Shubhanpura
	ZWL002475 Locality = "ZWL002475" // Vadodara Alkapuri
	ZWL005549 Locality = "ZWL005549" // Nagpur Pratap Nagar
	ZWL001438 Locality = "ZWL001438" // Nagpur Sadar
	ZWL006432 Locality = "ZWL006432" // Nagpur Kharabi, Nagpur
	ZWL009782 Locality = "ZWL009782" // Nagpur Hanuman Nagar
	ZWL008282 Locality = "ZWL008282" // Nagpur Dharampeth
	ZWL001041 Locality = "ZWL001041" // Nagpur Manish Nagar
	ZWL007188 Locality = "ZWL007188" // Nagpur Ayodhya Nagar, Nagpur
	ZWL003633 Locality = "ZWL003633" // Nagpur Gandhibagh
	ZWL002458 Locality = "ZWL002458" // Mysore Central Mysore
	ZWL005095 Locality = "ZWL005095" // Surat Udhna, Surat
	ZWL002155 Locality = "ZWL002155" // Surat City Light, Surat
	ZWL007951 Locality = "ZWL007951" // Surat Athwa
	ZWL006000 Locality = "ZWL006000" // Surat Vesu, Surat
	ZWL008198 Locality = "ZWL008198" // Surat Adajan, Surat
	ZWL002771 Locality = "ZWL002771" // Surat Varaccha, Surat
	ZWL005626 Locality = "ZWL005626" // Surat New Textile Market, Surat
	ZWL005423 Locality = "ZWL005423" // Surat Katargam, Surat
	ZWL009343 Locality = "ZWL009343" // Trivandrum Kazhakoottam, Thiruvananthapuram
	ZWL007746 Locality = "ZWL007746" // Trivandrum Tvm Central
	ZWL002223 Locality = "ZWL002223" // Trivandrum Nemom, Thiruvananthapuram
	ZWL005308 Locality = "ZWL005308" // Vijayawada Governorpet, Vijayawada
	ZWL004428 Locality = "ZWL004428" // Vijayawada Gunadala, Vijayawada
	ZWL002106 Locality = "ZWL002106" // Vijayawada Gollapudi, Vijayawada
	ZWL005858 Locality = "ZWL005858" // Vijayawada Auto Nagar, Vijayawada
	ZWL003905 Locality = "ZWL003905" // Vijayawada Labbipet, Vijayawada
	ZWL009921 Locality = "ZWL009921" // Jalandhar Shastri Nagar, Jalandhar
	ZWL002344 Locality = "ZWL002344" // Jalandhar Gurdev Nagar, Jalandhar
	ZWL001077 Locality = "ZWL001077" // Jalandhar Paragpur, Jalandhar
	ZWL005408 Locality = "ZWL005408" // Jalandhar Model Town, Jalandhar
	ZWL001624 Locality = "ZWL001624" // Jalandhar Basti Nau, Jalandhar
	ZWL004713 Locality = "ZWL004713" // Jalandhar Rama Mandi, Jalandhar
	ZWL007457 Locality = "ZWL007457" // Jammu Greater Kailash, Jammu
	ZWL005892 Locality = "ZWL005892" // Jammu Barnai, Jammu
	ZWL008753 Locality = "ZWL008753" // Jammu Gandhi Nagar, Jammu
	ZWL008047 Locality = "ZWL008047" // Jammu OLD JAMMU, Jammu
	ZWL002687 Locality = "ZWL002687" // Jammu Channi Himmat, Jammu
	ZWL003195 Locality = "ZWL003195" // Raipur Shankar Nagar, Raipur
	ZWL009896 Locality = "ZWL009896" // Raipur Purena, Raipur
	ZWL001038 Locality = "ZWL001038" // Raipur Mowa, Raipur
	ZWL008872 Locality = "ZWL008872" // Raipur Mahaveer Nagar
	ZWL004310 Locality = "ZWL004310" // Raipur Samta Colony, Raipur
	ZWL006651 Locality = "ZWL006651" // Raipur Civil Lines, Raipur
	ZWL008695 Locality = "ZWL008695" // Raipur Devendra Nagar
)

type localityInfo struct {
	name string
	lat  float64
	long float64
}

var localityTable = map[Locality]localityInfo{
	ZWL005764: {name: "Delhi NCR Sarita Vihar", lat: 28.531759, long: 77.293973},
	ZWL008752: {name: "Delhi NCR Faridabad Sector 41-50", lat: 28.460895, long: 77.304764},
	ZWL005996: {name: "Delhi NCR New Friends Colony", lat: 28.565268, long: 77.274971},
	ZWL005243: {name: "Delhi NCR Sector 26 (Noida)", lat: 28.574404, long: 77.334178},
	ZWL009032: {name: "Delhi NCR New Industrial Town", lat: 28.375702, long: 77.299442},
	ZWL005428: {name: "Delhi NCR Tilak Nagar", lat: 28.641372, long: 77.094689},
	ZWL001073: {name: "Delhi NCR Sector 10, Gurgaon", lat: 28.436077, long: 76.996757},
	ZWL001319: {name: "Delhi NCR Ashok Vihar, Delhi", lat: 28.684453, long: 77.174418},
	ZWL004800: {name: "Delhi NCR Kalkaji", lat: 28.529029, long: 77.258939},
	ZWL003118: {name: "Delhi NCR Sector 53", lat: 28.442743, long: 77.104379},
	ZWL002091: {name: "Delhi NCR Sector 49", lat: 28.408012, long: 77.050064},
	ZWL002662: {name: "Delhi NCR Vasundhara", lat: 28.665225, long: 77.366782},
	ZWL001404: {name: "Delhi NCR Rajinder Nagar", lat: 28.640732, long: 77.182900},
	ZWL008963: {name: "Delhi NCR Safdarjung Enclave", lat: 28.562608, long: 77.191457},
	ZWL006538: {name: "Delhi NCR Connaught Place", lat: 28.630630, long: 77.220640},
	ZWL003075: {name: "Delhi NCR Sector 66", lat: 28.380856, long: 77.062751},
	ZWL003721: {name: "Delhi NCR Sector 57", lat: 28.422100, long: 77.082740},
	ZWL006396: {name: "Delhi NCR Moti Bagh, Delhi", lat: 28.575774, long: 77.180697},
	ZWL004535: {name: "Delhi NCR Patel Nagar, Delhi", lat: 28.652848, long: 77.167909},
	ZWL008554: {name: "Delhi NCR Greater Noida", lat: 28.456171, long: 77.521577},
	ZWL004533: {name: "Delhi NCR Karkardooma, Delhi", lat: 28.656829, long: 77.310553},
	ZWL002179: {name: "Delhi NCR Tigaon", lat: 28.417120, long: 77.412569},
	ZWL007487: {name: "Delhi NCR Sector 50 (Noida)", lat: 28.569103, long: 77.364876},
	ZWL007120: {name: "Delhi NCR Vasant Kunj, Delhi", lat: 28.524633, long: 77.151206},
	ZWL007486: {name: "Delhi NCR Dwarka, Delhi", lat: 28.594467, long: 77.047747},
	ZWL006287: {name: "Delhi NCR Sector 15", lat: 28.457927, long: 77.034816},
	ZWL002146: {name: "Delhi NCR Mayur Vihar Phase III", lat: 28.606000, long: 77.323675},
	ZWL008405: {name: "Delhi NCR Crossing Republik", lat: 28.635043, long: 77.419056},
	ZWL004455: {name: "Delhi NCR Sector 28", lat: 28.473457, long: 77.087532},
	ZWL005087: {name: "Delhi NCR Palam Vihar, Gurgaon", lat: 28.508782, long: 77.033506},
	ZWL009648: {name: "Delhi NCR Sector 63 (Noida)", lat: 28.621672, long: 77.386474},
	ZWL008317: {name: "Delhi NCR Raj Nagar, Ghaziabad", lat: 28.689174, long: 77.428976},
	ZWL005878: {name: "Delhi NCR Sector 128", lat: 28.526706, long: 77.354868},
	ZWL003241: {name: "Delhi NCR Sector 56, Gurgaon", lat: 28.418235, long: 77.101860},
	ZWL007224: {name: "Delhi NCR Indirapuram", lat: 28.644059, long: 77.373883},
	ZWL009834: {name: "Delhi NCR Malviya Nagar", lat: 28.536048, long: 77.213453},
	ZWL007284: {name: "Delhi NCR Sector 43, Gurgaon", lat: 28.454416, long: 77.088820},
	ZWL006738: {name: "Delhi NCR Sector 120 (Noida)", lat: 28.586854, long: 77.390832},
	ZWL007329: {name: "Delhi NCR Saket", lat: 28.523171, long: 77.207543},
	ZWL001752: {name: "Delhi NCR Sector 18 (Noida)", lat: 28.568937, long: 77.324414},
	ZWL007594: {name: "Delhi NCR Naraina", lat: 28.627479, long: 77.142115},
	ZWL006116: {name: "Delhi NCR Patparganj", lat: 28.632961, long: 77.308344},
	ZWL009925: {name: "Delhi NCR Ghitorni", lat: 28.486412, long: 77.125366},
	ZWL009335: {name: "Delhi NCR Faridabad Sector 1-11", lat: 28.365131, long: 77.326157},
	ZWL009638: {name: "Delhi NCR Sector 24", lat: 28.497419, long: 77.090980},
	ZWL005670: {name: "Delhi NCR Rajouri Garden", lat: 28.646438, long: 77.122357},
	ZWL003757: {name: "Delhi NCR Vishnu Garden", lat: 28.646933, long: 77.095064},
	ZWL003610: {name: "Delhi NCR Sector 48, Gurgaon", lat: 28.416008, long: 77.032164},
	ZWL005971: {name: "Delhi NCR Kirti Nagar", lat: 28.654433, long: 77.142367},
	ZWL003626: {name: "Delhi NCR Faridabad Sector 81-89", lat: 28.397247, long: 77.345569},
	ZWL005876: {name: "Delhi NCR GK I", lat: 28.550911, long: 77.235272},
	ZWL006295: {name: "Delhi NCR Mohan Estate", lat: 28.494788, long: 77.312727},
	ZWL007653: {name: "Delhi NCR Mukherjee Nagar", lat: 28.702971, long: 77.209740},
	ZWL006697: {name: "Delhi NCR Mehrauli", lat: 28.524426, long: 77.183996},
	ZWL003259: {name: "Delhi NCR Burari", lat: 28.753669, long: 77.191037},
	ZWL004759: {name: "Delhi NCR Gaur city, Ghaziabad", lat: 28.607703, long: 77.434385},
	ZWL004477: {name: "Delhi NCR GK II", lat: 28.533936, long: 77.243800},
	ZWL005077: {name: "Delhi NCR Rohini", lat: 28.723712, long: 77.104596},
	ZWL008191: {name: "Delhi NCR Rangpuri", lat: 28.533976, long: 77.119516},
	ZWL006092: {name: "Delhi NCR Sector 46", lat: 28.438586, long: 77.060773},
	ZWL001549: {name: "Delhi NCR Sector 62 (Noida)", lat: 28.611088, long: 77.369652},
	ZWL001036: {name: "Delhi NCR Shalimar Bagh", lat: 28.720312, long: 77.164849},
	ZWL006996: {name: "Delhi NCR Model Town", lat: 28.717232, long: 77.194643},
	ZWL007566: {name: "Delhi NCR Faridabad Sector 16-20", lat: 28.422437, long: 77.310113},
	ZWL009852: {name: "Delhi NCR Sector 2 (Noida)", lat: 28.581459, long: 77.316720},
	ZWL008648: {name: "Delhi NCR Govindpuram", lat: 28.689317, long: 77.486930},
	ZWL009728: {name: "Delhi NCR Gwal Pahari", lat: 28.435122, long: 77.136308},
	ZWL006868: {name: "Delhi NCR Nehru Nagar", lat: 28.653441, long: 77.449969},
	ZWL002067: {name: "Delhi NCR Chittaranjan Park", lat: 28.537530, long: 77.249070},
	ZWL008791: {name: "Delhi NCR IMT Manesar", lat: 28.384492, long: 76.941950},
	ZWL003043: {name: "Delhi NCR Sector 73 Z Kitchen", lat: 28.580105, long: 77.385436},
	ZWL004159: {name: "Delhi NCR Sector 51", lat: 28.430042, long: 77.065213},
	ZWL005960: {name: "Delhi NCR Ballabhgarh", lat: 28.343049, long: 77.330317},
	ZWL009293: {name: "Delhi NCR Nangloi", lat: 28.659524, long: 77.060800},
	ZWL001663: {name: "Delhi NCR Uttam Nagar", lat: 28.616774, long: 77.057136},
	ZWL005762: {name: "Delhi NCR Sector 47", lat: 28.424524, long: 77.050065},
	ZWL005345: {name: "Delhi NCR Paharganj", lat: 28.645112, long: 77.212824},
	ZWL008225: {name: "Delhi NCR Sector 25", lat: 28.484268, long: 77.084693},
	ZWL001933: {name: "Delhi NCR Pitampura", lat: 28.688724, long: 77.138225},
	ZWL003591: {name: "Delhi NCR Shahdara", lat: 28.688657, long: 77.278267},
	ZWL007061: {name: "Delhi NCR Sector 31", lat: 28.442946, long: 77.057195},
	ZWL008476: {name: "Delhi NCR Sector 23", lat: 28.509080, long: 77.057138},
	ZWL009008: {name: "Delhi NCR Sector 12 (Noida)", lat: 28.599952, long: 77.343188},
	ZWL005323: {name: "Delhi NCR Mayur Vihar Phase II", lat: 28.613695, long: 77.302775},
	ZWL001412: {name: "Delhi NCR Faridabad Sector 12-15", lat: 28.394334, long: 77.324016},
	ZWL005925: {name: "Delhi NCR DLF PHASE 1 (SECTOR 26)", lat: 28.477910, long: 77.103843},
	ZWL008716: {name: "Delhi NCR Laxmi Nagar", lat: 28.627366, long: 77.279200},
	ZWL009339: {name: "Delhi NCR Karol Bagh", lat: 28.647924, long: 77.190463},
	ZWL009096: {name: "Delhi NCR Chhatarpur", lat: 28.497203, long: 77.171629},
	ZWL006720: {name: "Delhi NCR Paschim Vihar", lat: 28.665591, long: 77.098478},
	ZWL002908: {name: "Delhi NCR Sector 1, Noida", lat: 28.573663, long: 77.415427},
	ZWL001186: {name: "Delhi NCR South Extension I", lat: 28.578498, long: 77.223627},
	ZWL004789: {name: "Delhi NCR Sector 18", lat: 28.495291, long: 77.069729},
	ZWL008978: {name: "Delhi NCR Kamla Nagar", lat: 28.676018, long: 77.208446},
	ZWL007903: {name: "Delhi NCR Janakpuri", lat: 28.623431, long: 77.097814},
	ZWL008897: {name: "Delhi NCR Vikaspuri", lat: 28.645655, long: 77.065922},
	ZWL007431: {name: "Delhi NCR Najafgarh", lat: 28.607458, long: 76.995980},
	ZWL001112: {name: "Delhi NCR Mayur Vihar Phase 1", lat: 28.609961, long: 77.296133},
	ZWL008649: {name: "Delhi NCR Sez Noida 1", lat: 28.507448, long: 77.410089},
	ZWL006384: {name: "Delhi NCR Gulavali, Noida", lat: 28.436941, long: 77.456903},
	ZWL007840: {name: "Delhi NCR Sector 14", lat: 28.471738, long: 77.045472},
	ZWL002072: {name: "Delhi NCR Sector 76(Noida)", lat: 28.570828, long: 77.390429},
	ZWL003077: {name: "Delhi NCR Green Park", lat: 28.562981, long: 77.209729},
	ZWL005395: {name: "Delhi NCR Munirka", lat: 28.554395, long: 77.172547},
	ZWL005729: {name: "Delhi NCR NEHRU PLACE", lat: 28.555622, long: 77.250890},
	ZWL005736: {name: "Delhi NCR Lajpat Nagar", lat: 28.565415, long: 77.247221},
	ZWL007212: {name: "Delhi NCR Sector 52 (Noida)", lat: 28.595742, long: 77.362995},
	ZWL004803: {name: "Delhi NCR Sector 100 (Noida)", lat: 28.547583, long: 77.370951},
	ZWL003444: {name: "Delhi NCR Sector 50", lat: 28.418947, long: 77.059581},
	ZWL008293: {name: "Delhi NCR Dilshad Garden", lat: 28.684684, long: 77.320986},
	ZWL007308: {name: "Delhi NCR Sector 29, Gurgaon", lat: 28.459498, long: 77.061046},
	ZWL008219: {name: "Delhi NCR SUSHANT LOK 1", lat: 28.467923, long: 77.076530},
	ZWL006234: {name: "Delhi NCR SAHIBABAD", lat: 28.682920, long: 77.362827},
	ZWL007666: {name: "Delhi NCR Sector 45 (Noida)", lat: 28.555596, long: 77.345713},
	ZWL002490: {name: "Delhi NCR Sector 84", lat: 28.395433, long: 76.967436},
	ZWL007138: {name: "Delhi NCR Sector 7, Gurgaon", lat: 28.476288, long: 77.013365},
	ZWL009706: {name: "Delhi NCR Sector 27", lat: 28.465260, long: 77.085742},
	ZWL001267: {name: "Delhi NCR Hauz Khas", lat: 28.551132, long: 77.211401},
	ZWL003552: {name: "Delhi NCR Jangpura", lat: 28.583630, long: 77.246915},
	ZWL008401: {name: "Delhi NCR Sector 52, Gurgaon", lat: 28.443858, long: 77.083991},
	ZWL001758: {name: "Delhi NCR Vaishali, Ghaziabad", lat: 28.649375, long: 77.336609},
	ZWL003128: {name: "Kolkata Shibpur", lat: 22.578477, long: 88.315675},
	ZWL004322: {name: "Kolkata Kalyani 1, Kolkata", lat: 22.983813, long: 88.427417},
	ZWL002495: {name: "Kolkata Bansdroni", lat: 22.472208, long: 88.357875},
	ZWL009257: {name: "Kolkata Bow Barracks", lat: 22.565476, long: 88.360918},
	ZWL005435: {name: "Kolkata Baranagar, Kolkata", lat: 22.660464, long: 88.374255},
	ZWL007041: {name: "Kolkata Sonarpur, Kolkata", lat: 22.432033, long: 88.408369},
	ZWL002918: {name: "Kolkata Ballygunge", lat: 22.532686, long: 88.362677},
	ZWL003388: {name: "Kolkata Sinthi, Kolkata", lat: 22.627697, long: 88.380719},
	ZWL008806: {name: "Kolkata Salt Lake 2", lat: 22.583560, long: 88.432176},
	ZWL008635: {name: "Kolkata Alipore", lat: 22.536626, long: 88.331142},
	ZWL002312: {name: "Kolkata Baguihati", lat: 22.614990, long: 88.426184},
	ZWL001499: {name: "Kolkata South Dum Dum", lat: 22.621570, long: 88.408915},
	ZWL003315: {name: "Kolkata Purba Barisha", lat: 22.474612, long: 88.320775},
	ZWL003794: {name: "Kolkata Jadavpur", lat: 22.498720, long: 88.362540},
	ZWL006574: {name: "Kolkata Tollygunge", lat: 22.498620, long: 88.351732},
	ZWL004138: {name: "Kolkata Shyam Bazar", lat: 22.594302, long: 88.377284},
	ZWL009022: {name: "Kolkata Behala", lat: 22.488571, long: 88.306630},
	ZWL003271: {name: "Kolkata Chandannagar, Kolkata", lat: 22.865442, long: 88.367339},
	ZWL003951: {name: "Kolkata Barrackpore", lat: 22.766771, long: 88.361552},
	ZWL003915: {name: "Kolkata East Kolkata Township", lat: 22.512832, long: 88.399411},
	ZWL006750: {name: "Kolkata Bhowanipore", lat: 22.526436, long: 88.343904},
	ZWL008828: {name: "Kolkata Elgin", lat: 22.543063, long: 88.356096},
	ZWL008426: {name: "Kolkata Howrah", lat: 22.604678, long: 88.342218},
	ZWL007323: {name: "Kolkata New Alipore", lat: 22.506135, long: 88.332770},
	ZWL006266: {name: "Kolkata Barasat", lat: 22.735727, long: 88.490498},
	ZWL008393: {name: "Kolkata New Town (kolkata)", lat: 22.588818, long: 88.457964},
	ZWL007966: {name: "Kolkata Uttarpara", lat: 22.692420, long: 88.342900},
	ZWL001039: {name: "Kolkata Santoshpur", lat: 22.502107, long: 88.388897},
	ZWL003882: {name: "Kolkata Liluah", lat: 22.635342, long: 88.343314},
	ZWL004925: {name: "Kolkata Rajarhat", lat: 22.621505, long: 88.446915},
	ZWL005244: {name: "Kolkata Park Street area", lat: 22.552632, long: 88.362888},
	ZWL003687: {name: "Kolkata Baghajatin Colony", lat: 22.481243, long: 88.374932},
	ZWL008120: {name: "Kolkata Shrirampur", lat: 22.735733, long: 88.344597},
	ZWL007514: {name: "Kolkata Chhota Jagulia", lat: 22.759573, long: 88.747215},
	ZWL003935: {name: "Kolkata Dum Dum", lat: 22.656310, long: 88.423694},
	ZWL002931: {name: "Kolkata Kestopur", lat: 22.597524, long: 88.431114},
	ZWL006521: {name: "Kolkata Sodepur", lat: 22.701254, long: 88.383329},
	ZWL005558: {name: "Kolkata Nimta", lat: 22.670256, long: 88.413503},
	ZWL005174: {name: "Kolkata Shapoorji", lat: 22.567623, long: 88.497427},
	ZWL002488: {name: "Kolkata Barabazar Market", lat: 22.574220, long: 88.366682},
	ZWL007934: {name: "Kolkata Salt Lake 1", lat: 22.573829, long: 88.412814},
	ZWL001584: {name: "Kolkata Tangra", lat: 22.555059, long: 88.388175},
	ZWL005429: {name: "Kolkata Gariahat", lat: 22.514492, long: 88.362000},
	ZWL005121: {name: "Kolkata Santragachi", lat: 22.621044, long: 88.283605},
	ZWL007830: {name: "Kolkata Garia", lat: 22.469249, long: 88.382261},
	ZWL008991: {name: "Kolkata Chinsurah, Kolkata", lat: 22.933551, long: 88.398649},
	ZWL009194: {name: "Kolkata Kankurgachi", lat: 22.573467, long: 88.391666},
	ZWL004722: {name: "Kolkata Kasba", lat: 22.521693, long: 88.389844},
	ZWL006536: {name: "Mumbai Mira Road East", lat: 19.278130, long: 72.874722},
	ZWL004934: {name: "Mumbai Kandivali West", lat: 19.212156, long: 72.828850},
	ZWL004821: {name: "Mumbai Boisar, Mumbai", lat: 19.804797, long: 72.745805},
	ZWL007249: {name: "Mumbai Bhiwandi", lat: 19.251790, long: 73.087318},
	ZWL001164: {name: "Mumbai Panvel", lat: 18.998845, long: 73.108933},
	ZWL009537: {name: "Mumbai Kopar Khairane (Navi Mumbai)", lat: 19.113909, long: 73.012598},
	ZWL007275: {name: "Mumbai Vashi", lat: 19.067662, long: 73.004987},
	ZWL002556: {name: "Mumbai Titwala, Mumbai", lat: 19.292555, long: 73.205899},
	ZWL006937: {name: "Mumbai Kandivali East", lat: 19.200730, long: 72.865461},
	ZWL008636: {name: "Mumbai Nalasopara", lat: 19.424433, long: 72.817134},
	ZWL003995: {name: "Mumbai Lower Parel", lat: 19.005114, long: 72.820143},
	ZWL006938: {name: "Mumbai Goregaon East", lat: 19.163093, long: 72.872277},
	ZWL008550: {name: "Mumbai Santacruz East", lat: 19.076131, long: 72.858715},
	ZWL004494: {name: "Mumbai Ghatkopar East, Mumbai", lat: 19.080794, long: 72.922280},
	ZWL003708: {name: "Mumbai Palava", lat: 19.168067, long: 73.074612},
	ZWL008711: {name: "Mumbai Malad West", lat: 19.187022, long: 72.827076},
	ZWL005991: {name: "Mumbai Borivali East", lat: 19.241003, long: 72.865970},
	ZWL002865: {name: "Mumbai Kalyan,West,Mumbai", lat: 19.255127, long: 73.128176},
	ZWL004749: {name: "Mumbai Santacruz West", lat: 19.082610, long: 72.835608},
	ZWL001274: {name: "Mumbai Badlapur, Mumbai", lat: 19.174156, long: 73.225767},
	ZWL007699: {name: "Mumbai Ambernath", lat: 19.199776, long: 73.181176},
	ZWL001764: {name: "Mumbai Marine lines", lat: 18.952178, long: 72.825198},
	ZWL002921: {name: "Mumbai Mulund West", lat: 19.170765, long: 72.942239},
	ZWL001410: {name: "Mumbai Airoli", lat: 19.170339, long: 72.995114},
	ZWL009757: {name: "Mumbai Kharghar (Navi Mumbai)", lat: 19.069735, long: 73.055883},
	ZWL002059: {name: "Mumbai Ulhasnagar (Mumbai)", lat: 19.224136, long: 73.169340},
	ZWL001058: {name: "Mumbai Ghatkopar West, Mumbai", lat: 19.096740, long: 72.904562},
	ZWL006995: {name: "Mumbai Bandra West", lat: 19.068857, long: 72.833000},
	ZWL004692: {name: "Mumbai Dadar West", lat: 19.021199, long: 72.835378},
	ZWL007667: {name: "Mumbai Andheri West", lat: 19.137106, long: 72.834828},
	ZWL009338: {name: "Mumbai Vile Parle West", lat: 19.109560, long: 72.832194},
	ZWL009167: {name: "Mumbai Byculla", lat: 18.974283, long: 72.833712},
	ZWL006032: {name: "Mumbai Vasai", lat: 19.364358, long: 72.836612},
	ZWL007397: {name: "Mumbai Kalyan,East (Mumbai)", lat: 19.221503, long: 73.138111},
	ZWL009360: {name: "Mumbai Ulwe, Mumbai", lat: 18.974217, long: 73.024914},
	ZWL002205: {name: "Mumbai Fort", lat: 18.940613, long: 72.834235},
	ZWL008975: {name: "Mumbai Andheri East", lat: 19.108639, long: 72.874437},
	ZWL009252: {name: "Mumbai Chembur", lat: 19.049840, long: 72.907847},
	ZWL002558: {name: "Mumbai Palghar, Mumbai", lat: 19.700631, long: 72.763031},
	ZWL002742: {name: "Mumbai Mumbra, Mumbai", lat: 19.172636, long: 73.023715},
	ZWL004971: {name: "Mumbai Mulund East", lat: 19.154253, long: 72.962493},
	ZWL008348: {name: "Mumbai Shirdhon, Mumbai", lat: 19.195881, long: 73.128886},
	ZWL001344: {name: "Mumbai Virar", lat: 19.461784, long: 72.799199},
	ZWL007606: {name: "Mumbai Tardeo", lat: 18.961317, long: 72.805513},
	ZWL005697: {name: "Mumbai Bandra East", lat: 19.064138, long: 72.852737},
	ZWL005442: {name: "Mumbai Thane West", lat: 19.227309, long: 72.972736},
	ZWL004189: {name: "Mumbai Kurla West", lat: 19.079972, long: 72.881537},
	ZWL005000: {name: "Mumbai Goregaon West", lat: 19.162722, long: 72.841610},
	ZWL002056: {name: "Mumbai Hiranandani Estate", lat: 19.267411, long: 72.967074},
	ZWL009826: {name: "Mumbai Dombivli", lat: 19.210229, long: 73.102272},
	ZWL007889: {name: "Mumbai Bhandup West", lat: 19.151889, long: 72.934553},
	ZWL008977: {name: "Mumbai Kamothe", lat: 19.023359, long: 73.091814},
	ZWL006622: {name: "Mumbai Powai, Mumbai", lat: 19.115248, long: 72.908952},
	ZWL002074: {name: "Mumbai Naupada", lat: 19.188451, long: 72.968001},
	ZWL008874: {name: "Mumbai Bhayandar West", lat: 19.257869, long: 72.804743},
	ZWL001334: {name: "Mumbai Vileparle East", lat: 19.098430, long: 72.864947},
	ZWL008378: {name: "Mumbai Sion", lat: 19.045271, long: 72.864631},
	ZWL007690: {name: "Mumbai Nerul (Navi Mumbai)", lat: 19.031072, long: 73.026647},
	ZWL007706: {name: "Mumbai Dahisar West", lat: 19.255014, long: 72.848267},
	ZWL005320: {name: "Mumbai Colaba", lat: 18.919405, long: 72.824376},
	ZWL006544: {name: "Mumbai Mahim", lat: 19.039256, long: 72.843913},
	ZWL002686: {name: "Mumbai Wadala", lat: 19.017538, long: 72.867138},
	ZWL001089: {name: "Mumbai Borivali West", lat: 19.229714, long: 72.839710},
	ZWL008360: {name: "Mumbai Palava Lakeshore,Mumbai", lat: 19.165716, long: 73.105733},
	ZWL003467: {name: "Bengaluru Banashankari", lat: 12.936787, long: 77.556079},
	ZWL004900: {name: "Bengaluru Rajarajeshwari Nagar", lat: 12.918637, long: 77.505467},
	ZWL005530: {name: "Bengaluru JP Nagar", lat: 12.893441, long: 77.560436},
	ZWL007643: {name: "Bengaluru Mahadevapura", lat: 12.985322, long: 77.687578},
	ZWL003159: {name: "Bengaluru Jalahalli", lat: 13.031518, long: 77.530986},
	ZWL002736: {name: "Bengaluru RT Nagar", lat: 13.021267, long: 77.601234},
	ZWL006369: {name: "Bengaluru KR Puram", lat: 13.016987, long: 77.706819},
	ZWL006274: {name: "Bengaluru Electronic City", lat: 12.833101, long: 77.673182},
	ZWL005375: {name: "Bengaluru Vijayanagar", lat: 12.973219, long: 77.519303},
	ZWL008600: {name: "Bengaluru Marathahalli", lat: 12.955103, long: 77.696507},
	ZWL002292: {name: "Bengaluru Sarjapur road", lat: 12.900225, long: 77.697451},
	ZWL004341: {name: "Bengaluru Brookefields", lat: 12.967420, long: 77.717851},
	ZWL007633: {name: "Bengaluru Whitefield", lat: 12.975224, long: 77.740422},
	ZWL009212: {name: "Bengaluru Nagavara", lat: 13.048370, long: 77.625534},
	ZWL007628: {name: "Bengaluru New BEL Road", lat: 13.040495, long: 77.569420},
	ZWL001156: {name: "Bengaluru Koramangala", lat: 12.933756, long: 77.625825},
	ZWL004924: {name: "Bengaluru Bannerghatta Road, Bangalore", lat: 12.891397, long: 77.608176},
	ZWL009229: {name: "Bengaluru Aavalahalli", lat: 13.034488, long: 77.712241},
	ZWL005576: {name: "Bengaluru BIAL Airport Road", lat: 13.178996, long: 77.630005},
	ZWL006658: {name: "Bengaluru Yelahanka", lat: 13.111809, long: 77.589276},
	ZWL002882: {name: "Bengaluru Kadugodi", lat: 13.007511, long: 77.763209},
	ZWL006631: {name: "Bengaluru Kammanahalli", lat: 13.016050, long: 77.661735},
	ZWL001196: {name: "Bengaluru HSR Layout", lat: 12.908482, long: 77.641773},
	ZWL006600: {name: "Bengaluru BTM Layout", lat: 12.916931, long: 77.608897},
	ZWL006854: {name: "Bengaluru Varthur", lat: 12.936055, long: 77.723415},
	ZWL001273: {name: "Bengaluru Indiranagar", lat: 12.952636, long: 77.653059},
	ZWL008105: {name: "Bengaluru Jayanagar", lat: 12.944441, long: 77.581003},
	ZWL005206: {name: "Bengaluru Sahakaranagar", lat: 13.059918, long: 77.591344},
	ZWL008797: {name: "Bengaluru Devanahalli, Bangalore", lat: 13.258381, long: 77.716183},
	ZWL001962: {name: "Bengaluru MG Road", lat: 12.982689, long: 77.608075},
	ZWL006844: {name: "Bengaluru Rajajinagar", lat: 12.993217, long: 77.557903},
	ZWL004164: {name: "Bengaluru Bellandur", lat: 12.936225, long: 77.665059},
	ZWL007698: {name: "Pune NIGDI(Pune)", lat: 18.646511, long: 73.775411},
	ZWL005773: {name: "Pune Bibvewadi (Pune)", lat: 18.492332, long: 73.861939},
	ZWL009577: {name: "Pune Nanded-Nahre", lat: 18.453179, long: 73.811077},
	ZWL002253: {name: "Pune Bhosari (Pune)", lat: 18.643893, long: 73.858653},
	ZWL003498: {name: "Pune Camp Area", lat: 18.513693, long: 73.877293},
	ZWL004311: {name: "Pune Magarpatta", lat: 18.519482, long: 73.934360},
	ZWL007801: {name: "Pune Pimpri", lat: 18.625381, long: 73.791194},
	ZWL008134: {name: "Pune Yerwada", lat: 18.544659, long: 73.869499},
	ZWL009625: {name: "Pune Kalyani Nagar (Pune)", lat: 18.546538, long: 73.906594},
	ZWL001627: {name: "Pune Sus, Pune", lat: 18.564293, long: 73.753879},
	ZWL006236: {name: "Pune Bavdhan", lat: 18.514730, long: 73.777922},
	ZWL006743: {name: "Pune Viman nagar", lat: 18.564998, long: 73.911551},
	ZWL004927: {name: "Pune Aundh (Pune)", lat: 18.559795, long: 73.807123},
	ZWL008370: {name: "Pune Katraj (Pune)", lat: 18.451394, long: 73.847642},
	ZWL004523: {name: "Pune", lat: 18.600897, long: 73.798441},
	ZWL001778: {name: "Pune Dhanori", lat: 18.588936, long: 73.907711},
	ZWL003386: {name: "Pune Dehu Road", lat: 18.695874, long: 73.740365},
	ZWL009157: {name: "Pune Koregaon Park (Pune)", lat: 18.535326, long: 73.883976},
	ZWL004962: {name: "Pune Hinjewadi - Phase 2", lat: 18.585004, long: 73.706319},
	ZWL005340: {name: "Pune", lat: 18.599555, long: 73.774652},
	ZWL009671: {name: "Pune Manas Lake, Pune", lat: 18.491382, long: 73.748953},
	ZWL008921: {name: "Pune Sadashiv Peth", lat: 18.511357, long: 73.856996},
	ZWL008940: {name: "Pune Ghorpadi (Pune)", lat: 18.519767, long: 73.897269},
	ZWL009874: {name: "Pune Pashan (Pune)", lat: 18.527587, long: 73.789459},
	ZWL006660: {name: "Pune SP Infocity, Pune", lat: 18.487813, long: 73.947187},
	ZWL003813: {name: "Pune Manjri,Pune", lat: 18.509232, long: 73.978364},
	ZWL007471: {name: "Pune Khadki, Pune", lat: 18.563289, long: 73.835023},
	ZWL009602: {name: "Pune Kothrud (Pune)", lat: 18.504984, long: 73.811587},
	ZWL002208: {name: "Pune Sinhagad Road(Pune)", lat: 18.477264, long: 73.826437},
	ZWL007895: {name: "Pune New Sangvi, Pune", lat: 18.578959, long: 73.823437},
	ZWL003099: {name: "Pune Nimgaon, Pune", lat: 18.794589, long: 73.910016},
	ZWL004575: {name: "Pune Wagholi", lat: 18.579310, long: 73.972122},
	ZWL004513: {name: "Pune Keshavnagar, Pune", lat: 18.537273, long: 73.944521},
	ZWL008983: {name: "Pune Baner (Pune)", lat: 18.567954, long: 73.783475},
	ZWL005520: {name: "Pune Warje (Pune)", lat: 18.472703, long: 73.788400},
	ZWL003300: {name: "Pune Mundwa, Pune", lat: 18.535220, long: 73.918549},
	ZWL001963: {name: "Pune Chakan", lat: 18.752436, long: 73.837484},
	ZWL002422: {name: "Pune Shivaji Nagar (Pune)", lat: 18.526724, long: 73.841658},
	ZWL005088: {name: "Pune Yewalewadi, Pune", lat: 18.439804, long: 73.902433},
	ZWL003014: {name: "Pune Bopkhel, Pune", lat: 18.586306, long: 73.859602},
	ZWL001472: {name: "Pune Kharadi", lat: 18.552390, long: 73.941901},
	ZWL004339: {name: "Pune Talegaon Dabhade", lat: 18.738724, long: 73.675701},
	ZWL003817: {name: "Pune Hinjewadi - Phase 1", lat: 18.596583, long: 73.733312},
	ZWL007925: {name: "Pune Wanowrie-Kondhwa", lat: 18.477085, long: 73.900966},
	ZWL003370: {name: "Hyderabad Nagole", lat: 17.359969, long: 78.565724},
	ZWL002088: {name: "Hyderabad Attapur", lat: 17.380875, long: 78.415717},
	ZWL006702: {name: "Hyderabad Peerzadiguda", lat: 17.411644, long: 78.578220},
	ZWL008776: {name: "Hyderabad Begumpet", lat: 17.442659, long: 78.482009},
	ZWL003918: {name: "Hyderabad Suraram, Hyderabad", lat: 17.559752, long: 78.437467},
	ZWL004079: {name: "Hyderabad Banjara Hills", lat: 17.419238, long: 78.438474},
	ZWL008309: {name: "Hyderabad Alwal", lat: 17.508852, long: 78.507402},
	ZWL002433: {name: "Hyderabad Sainikpuri", lat: 17.489079, long: 78.558910},
	ZWL007390: {name: "Hyderabad Saroor Nagar", lat: 17.348264, long: 78.530476},
	ZWL004767: {name: "Hyderabad Karkhana", lat: 17.467142, long: 78.496696},
	ZWL006016: {name: "Hyderabad Kompally", lat: 17.533309, long: 78.489965},
	ZWL003283: {name: "Hyderabad Himayatnagar", lat: 17.402602, long: 78.487229},
	ZWL007311: {name: "Hyderabad Medchal Road", lat: 17.637191, long: 78.480392},
	ZWL005919: {name: "Hyderabad Kukatpally", lat: 17.495894, long: 78.416259},
	ZWL001822: {name: "Hyderabad Amberpet", lat: 17.407658, long: 78.521703},
	ZWL008208: {name: "Hyderabad Jeedimetla", lat: 17.495621, long: 78.450281},
	ZWL001362: {name: "Hyderabad Gachibowli", lat: 17.452114, long: 78.351486},
	ZWL002162: {name: "Hyderabad LB Nagar", lat: 17.345727, long: 78.557062},
	ZWL009712: {name: "Hyderabad Dilsukhnagar", lat: 17.370431, long: 78.536184},
	ZWL005963: {name: "Hyderabad Masab Tank", lat: 17.398217, long: 78.462258},
	ZWL008297: {name: "Hyderabad Bachupally", lat: 17.544887, long: 78.359975},
	ZWL005424: {name: "Hyderabad Manikonda", lat: 17.405930, long: 78.388380},
	ZWL008585: {name: "Hyderabad Shamshabad", lat: 17.257432, long: 78.387920},
	ZWL008599: {name: "Hyderabad Miyapur", lat: 17.500034, long: 78.342670},
	ZWL006535: {name: "Hyderabad Hayath Nagar, Hyderabad", lat: 17.326620, long: 78.609288},
	ZWL006545: {name: "Hyderabad Sangareddy, Hyderabad", lat: 17.598038, long: 78.091346},
	ZWL009719: {name: "Hyderabad JNTU", lat: 17.485166, long: 78.389775},
	ZWL008890: {name: "Hyderabad Serilingampally", lat: 17.485245, long: 78.313916},
	ZWL007119: {name: "Hyderabad Nizampet", lat: 17.509398, long: 78.390364},
	ZWL004747: {name: "Hyderabad Q City, Hyderabad", lat: 17.421788, long: 78.318868},
	ZWL004802: {name: "Hyderabad Madhapur", lat: 17.441185, long: 78.398416},
	ZWL004665: {name: "Hyderabad Narayanguda", lat: 17.392120, long: 78.494443},
	ZWL005999: {name: "Hyderabad ECIL", lat: 17.460327, long: 78.567924},
	ZWL003360: {name: "Hyderabad Toli Chowki", lat: 17.398121, long: 78.421238},
	ZWL007187: {name: "Hyderabad Kondapur", lat: 17.472485, long: 78.367854},
	ZWL007344: {name: "Hyderabad Charminar", lat: 17.375037, long: 78.454499},
	ZWL008438: {name: "Hyderabad Sivarampalli", lat: 17.345995, long: 78.439283},
	ZWL005494: {name: "Hyderabad Tarnaka", lat: 17.431829, long: 78.550940},
	ZWL009519: {name: "Hyderabad Moosapet", lat: 17.453292, long: 78.421126},
	ZWL001687: {name: "Hyderabad Patancheru, Hyderabad", lat: 17.542613, long: 78.276529},
	ZWL005569: {name: "Hyderabad Vanasthali Puram", lat: 17.318241, long: 78.544989},
	ZWL003027: {name: "Hyderabad Ameerpet", lat: 17.434737, long: 78.446618},
	ZWL001337: {name: "Hyderabad Uppal", lat: 17.403149, long: 78.554106},
	ZWL001579: {name: "Hyderabad Malakpet", lat: 17.371621, long: 78.502672},
	ZWL006699: {name: "Hyderabad Hafiz Baba Nagar", lat: 17.338717, long: 78.497590},
	ZWL008512: {name: "Hyderabad Mokila, Hyderabad", lat: 17.436228, long: 78.190072},
	ZWL006789: {name: "Chennai Potheri", lat: 12.799983, long: 80.029865},
	ZWL004297: {name: "Chennai Pallavaram", lat: 12.973055, long: 80.151271},
	ZWL005190: {name: "Chennai Nungambakkam", lat: 13.060471, long: 80.255887},
	ZWL003967: {name: "Chennai Anna Nagar, Chennai", lat: 13.086884, long: 80.206602},
	ZWL008996: {name: "Chennai Perambur", lat: 13.121741, long: 80.225058},
	ZWL005857: {name: "Chennai Mogappair, Chennai", lat: 13.080365, long: 80.175724},
	ZWL006232: {name: "Chennai Royapuram", lat: 13.136635, long: 80.289535},
	ZWL008548: {name: "Chennai Mugalivakkam", lat: 13.014886, long: 80.152455},
	ZWL006053: {name: "Chennai Porur", lat: 13.048069, long: 80.158163},
	ZWL001398: {name: "Chennai Redhills", lat: 13.191443, long: 80.181225},
	ZWL001701: {name: "Chennai Tambaram", lat: 12.934834, long: 80.101824},
	ZWL008876: {name: "Chennai Avadi", lat: 13.125301, long: 80.069776},
	ZWL003387: {name: "Chennai Kilpauk", lat: 13.080772, long: 80.248018},
	ZWL007059: {name: "Chennai Ashok Nagar (CHENNAI)", lat: 13.022680, long: 80.200286},
	ZWL006520: {name: "Chennai Adyar", lat: 12.993947, long: 80.247174},
	ZWL001210: {name: "Chennai Alwarpet", lat: 13.032366, long: 80.257625},
	ZWL007171: {name: "Chennai Selaiyur", lat: 12.916570, long: 80.134348},
	ZWL006329: {name: "Chennai Thandalam, Chennai", lat: 12.863785, long: 79.947886},
	ZWL004233: {name: "Chennai Sholinganallur", lat: 12.921608, long: 80.233727},
	ZWL007209: {name: "Chennai Ambattur", lat: 13.117566, long: 80.146667},
	ZWL003452: {name: "Chennai Medavakkam", lat: 12.931197, long: 80.182327},
	ZWL007176: {name: "Chennai Poonamallee", lat: 13.052763, long: 80.090763},
	ZWL009897: {name: "Chennai Minjur, Chennai", lat: 13.282298, long: 80.266616},
	ZWL004882: {name: "Chennai Urapakkam", lat: 12.878957, long: 80.070307},
	ZWL006156: {name: "Chennai Velachery", lat: 12.989300, long: 80.199988},
	ZWL001141: {name: "Chennai Navallur", lat: 12.841923, long: 80.209025},
	ZWL004431: {name: "Chennai Vadapalani", lat: 13.065160, long: 80.207917},
	ZWL001516: {name: "Chennai T Nagar", lat: 13.026256, long: 80.228120},
	ZWL003425: {name: "Lucknow Hazratganj", lat: 26.844819, long: 80.940833},
	ZWL006490: {name: "Lucknow Aminabad", lat: 26.856770, long: 80.925103},
	ZWL009091: {name: "Lucknow Chowk", lat: 26.873686, long: 80.894502},
	ZWL003030: {name: "Lucknow Telibagh, Lucknow", lat: 26.776664, long: 80.936755},
	ZWL004978: {name: "Lucknow Husainganj", lat: 26.836970, long: 80.926110},
	ZWL009177: {name: "Lucknow Jankipuram", lat: 26.926427, long: 80.936884},
	ZWL004436: {name: "Lucknow Arjunganj", lat: 26.794554, long: 80.999112},
	ZWL005470: {name: "Lucknow Chinhat, Lucknow", lat: 26.878323, long: 81.038299},
	ZWL001500: {name: "Lucknow Mahanagar", lat: 26.886387, long: 80.960641},
	ZWL003371: {name: "Lucknow Ashiyana", lat: 26.790510, long: 80.913855},
	ZWL003635: {name: "Lucknow Indira Nagar, Lucknow", lat: 26.883684, long: 80.990290},
	ZWL003320: {name: "Lucknow Vasant Kunj, Lucknow", lat: 26.877121, long: 80.878447},
	ZWL009682: {name: "Lucknow Rajajipuram", lat: 26.842055, long: 80.873868},
	ZWL002273: {name: "Lucknow Gomti Nagar", lat: 26.850582, long: 80.999875},
	ZWL002331: {name: "Lucknow Alambagh", lat: 26.810769, long: 80.904864},
	ZWL007731: {name: "Lucknow Aliganj, Lucknow", lat: 26.890082, long: 80.942007},
	ZWL007011: {name: "Lucknow Kalyanpur", lat: 26.907206, long: 80.974143},
	ZWL003768: {name: "Kochi Eroor", lat: 9.929826, long: 76.332369},
	ZWL005555: {name: "Kochi Kakkanad", lat: 10.014153, long: 76.358626},
	ZWL002986: {name: "Kochi Nedumbassery,Kochi", lat: 10.178008, long: 76.386636},
	ZWL004273: {name: "Kochi North Paravur, Kochi", lat: 10.162441, long: 76.216317},
	ZWL005425: {name: "Kochi Aluva, Kochi", lat: 10.106615, long: 76.348843},
	ZWL004691: {name: "Kochi Ambalamugal", lat: 9.980241, long: 76.397987},
	ZWL001981: {name: "Kochi Kalamassery", lat: 10.046034, long: 76.308117},
	ZWL003786: {name: "Kochi Kaloor", lat: 10.000143, long: 76.298744},
	ZWL009487: {name: "Kochi Perumbavoor,Kochi", lat: 10.117563, long: 76.460320},
	ZWL007216: {name: "Kochi Thiruvankulam", lat: 9.932264, long: 76.385740},
	ZWL002327: {name: "Kochi Vypin, Kochi", lat: 10.019731, long: 76.245595},
	ZWL006873: {name: "Kochi Ernakulam", lat: 9.969514, long: 76.288288},
	ZWL004591: {name: "Kochi Fort Kochi", lat: 9.931564, long: 76.268065},
	ZWL005082: {name: "Jaipur Mansarovar-2", lat: 26.844258, long: 75.768570},
	ZWL003863: {name: "Jaipur Tonk road 2", lat: 26.853567, long: 75.794945},
	ZWL009286: {name: "Jaipur Jagatpura", lat: 26.825942, long: 75.851086},
	ZWL009458: {name: "Jaipur Shyam Nagar", lat: 26.887617, long: 75.756174},
	ZWL003704: {name: "Jaipur C Scheme", lat: 26.916823, long: 75.801190},
	ZWL003606: {name: "Jaipur Lal Kothi", lat: 26.893689, long: 75.797800},
	ZWL009569: {name: "Jaipur Pink City", lat: 26.929588, long: 75.823855},
	ZWL001750: {name: "Jaipur Vaishali Nagar", lat: 26.909885, long: 75.739394},
	ZWL002751: {name: "Jaipur Malviya Nagar", lat: 26.854191, long: 75.810798},
	ZWL005080: {name: "Jaipur Sodala", lat: 26.904751, long: 75.777608},
	ZWL008680: {name: "Jaipur Vidhyadhar Nagar", lat: 26.963051, long: 75.770166},
	ZWL008249: {name: "Jaipur Raja Park", lat: 26.902497, long: 75.826544},
	ZWL008915: {name: "Jaipur Shastri Nagar", lat: 26.936514, long: 75.797054},
	ZWL006372: {name: "Jaipur Pratap Nagar", lat: 26.798396, long: 75.815353},
	ZWL003133: {name: "Ahmedabad Paldi", lat: 22.994998, long: 72.557474},
	ZWL002302: {name: "Ahmedabad Shahibag", lat: 23.058607, long: 72.592212},
	ZWL003747: {name: "Ahmedabad Navrangpura", lat: 23.038426, long: 72.558241},
	ZWL002503: {name: "Ahmedabad Chandkheda", lat: 23.117204, long: 72.607123},
	ZWL005979: {name: "Ahmedabad Science-City Sola", lat: 23.087361, long: 72.510289},
	ZWL005987: {name: "Ahmedabad Sector 16, Gandhinagar", lat: 23.216612, long: 72.652543},
	ZWL001959: {name: "Ahmedabad Vastrapur", lat: 23.042513, long: 72.524312},
	ZWL007404: {name: "Ahmedabad Prahlad Nagar", lat: 22.998074, long: 72.515955},
	ZWL001898: {name: "Ahmedabad Nikol", lat: 23.077071, long: 72.637566},
	ZWL002250: {name: "Ahmedabad Infocity, Gandhinagar", lat: 23.177762, long: 72.636221},
	ZWL004415: {name: "Ahmedabad Naranpura", lat: 23.072018, long: 72.573161},
	ZWL006288: {name: "Ahmedabad Bopal", lat: 23.011294, long: 72.464041},
	ZWL009182: {name: "Ahmedabad Maninagar", lat: 22.985307, long: 72.610322},
	ZWL009990: {name: "Ahmedabad Bodakdev", lat: 23.055398, long: 72.491724},
	ZWL003455: {name: "Ahmedabad Gota", lat: 23.131231, long: 72.543606},
	ZWL007561: {name: "Chandigarh Sector 15 (Chandigarh)", lat: 30.764466, long: 76.774815},
	ZWL006687: {name: "Chandigarh Sector 8 (Chandigarh)", lat: 30.749265, long: 76.801584},
	ZWL001934: {name: "Chandigarh Manimajra (Chandigarh)", lat: 30.722848, long: 76.835395},
	ZWL003936: {name: "Chandigarh Industrial Area Phase I (Chandigarh)", lat: 30.701381, long: 76.808231},
	ZWL004716: {name: "Chandigarh Sector 59 (Chandigarh)", lat: 30.725954, long: 76.716657},
	ZWL002303: {name: "Chandigarh Sector 20, Panchkula", lat: 30.667002, long: 76.860170},
	ZWL009521: {name: "9 nd Panchkula", lat: 30.694507, long: 76.849604},
	ZWL006817: {name: "Chandigarh Sector 28 (Chandigarh)", lat: 30.724245, long: 76.808833},
	ZWL003496: {name: "Chandigarh Phase 10 Mohali", lat: 30.692094, long: 76.733846},
	ZWL009894: {name: "Chandigarh Gillco, Chandigarh", lat: 30.736526, long: 76.654293},
	ZWL004101: {name: "Chandigarh Sector 46 (Chandigarh)", lat: 30.705920, long: 76.762310},
	ZWL003262: {name: "Chandigarh Sector 70 (Chandigarh)", lat: 30.709870, long: 76.692050},
	ZWL009430: {name: "Chandigarh VIP Road, Zirakpur", lat: 30.656048, long: 76.823298},
	ZWL004196: {name: "Chandigarh VR Mall", lat: 30.730066, long: 76.684242},
	ZWL003093: {name: "Chandigarh Sector 35 (Chandigarh)", lat: 30.727290, long: 76.756632},
	ZWL009406: {name: "Chandigarh Sector 22 (Chandigarh)", lat: 30.735307, long: 76.774912},
	ZWL002150: {name: "Goa Verna, Goa", lat: 15.380640, long: 73.909304},
	ZWL008519: {name: "Goa Mapusa, Goa", lat: 15.599556, long: 73.791137},
	ZWL004452: {name: "Goa Calangute, Goa", lat: 15.532704, long: 73.762608},
	ZWL006556: {name: "Goa Majorda, Goa", lat: 15.255895, long: 73.937616},
	ZWL002137: {name: "Goa Upper panaji, Goa", lat: 15.460913, long: 73.835391},
	ZWL005093: {name: "Goa Ponda, Goa", lat: 15.398953, long: 74.002377},
	ZWL002142: {name: "Goa Margao, Goa", lat: 15.231363, long: 73.997689},
	ZWL004621: {name: "Goa Vasco, Goa", lat: 15.387592, long: 73.829979},
	ZWL006403: {name: "Goa Morjim, Goa", lat: 15.653757, long: 73.747022},
	ZWL005568: {name: "Goa Porvorim, Goa", lat: 15.535007, long: 73.827229},
	ZWL009021: {name: "Ludhiana Sector 32, Ludhiana", lat: 30.895881, long: 75.906050},
	ZWL006208: {name: "Ludhiana Civil Lines, Ludhiana", lat: 30.916548, long: 75.818266},
	ZWL006788: {name: "Ludhiana Sarabha Nagar, Ludhiana", lat: 30.891869, long: 75.834901},
	ZWL005256: {name: "Ludhiana BRS Nagar, Ludhiana", lat: 30.897774, long: 75.787544},
	ZWL001163: {name: "Ludhiana Model Town, Ludhiana", lat: 30.881060, long: 75.875309},
	ZWL003304: {name: "Ludhiana Ganesh Nagar, Ludhiana", lat: 30.917540, long: 75.879759},
	ZWL003119: {name: "Ludhiana Dugri,Ludhiana", lat: 30.856247, long: 75.843129},
	ZWL006981: {name: "Guwahati Pathar Quarry, Guwahati", lat: 26.159879, long: 91.827651},
	ZWL006537: {name: "Guwahati Basistha-Lokhra, Guwahati", lat: 26.116888, long: 91.777488},
	ZWL009407: {name: "Guwahati North Guwahati, Guwahati", lat: 26.196471, long: 91.684788},
	ZWL004763: {name: "Guwahati Dharapur, Guwahati", lat: 26.134004, long: 91.623895},
	ZWL007095: {name: "Guwahati Lal Ganesh - Kahilipara, Guwahati", lat: 26.145102, long: 91.752656},
	ZWL002105: {name: "Guwahati Paltan-Bazar, Guwahati", lat: 26.183358, long: 91.752480},
	ZWL003362: {name: "Guwahati Azara, Guwahati", lat: 26.110966, long: 91.602115},
	ZWL002491: {name: "Guwahati Changsari, Guwahati", lat: 26.262376, long: 91.694879},
	ZWL005319: {name: "Guwahati Maligaon - Jalukbari, Guwahati", lat: 26.161285, long: 91.689576},
	ZWL005708: {name: "Guwahati Zoo Tiniali - Christian basti", lat: 26.177033, long: 91.779799},
	ZWL001780: {name: "Amritsar Himatpura, Amritsar", lat: 31.608999, long: 74.863051},
	ZWL008281: {name: "Amritsar Rasulpur, Amritsar", lat: 31.619590, long: 74.915049},
	ZWL004590: {name: "Amritsar Ranjit Avenue, Amritsar", lat: 31.666773, long: 74.850200},
	ZWL002073: {name: "Amritsar White Avenue, Amritsar", lat: 31.657377, long: 74.889594},
	ZWL005826: {name: "Amritsar Chheharta, Amritsar", lat: 31.633049, long: 74.817702},
	ZWL007456: {name: "Amritsar Hall Bazar, Amritsar", lat: 31.632158, long: 74.866838},
	ZWL008755: {name: "Bhopal Ashoka Garden, Bhopal", lat: 23.260793, long: 77.421525},
	ZWL009428: {name: "Bhopal Shahpura,Bhopal", lat: 23.176545, long: 77.418255},
	ZWL006900: {name: "Bhopal Airport Area, Bhopal", lat: 23.290449, long: 77.337426},
	ZWL002615: {name: "Bhopal TT Nagar, Bhopal", lat: 23.223600, long: 77.392134},
	ZWL003463: {name: "Bhopal BHEL, Bhopal", lat: 23.267602, long: 77.474332},
	ZWL002872: {name: "Bhopal MP Nagar,Bhopal", lat: 23.227641, long: 77.447330},
	ZWL005836: {name: "Bhopal Hoshangabad Road, Bhopal", lat: 23.168118, long: 77.482657},
	ZWL003417: {name: "s Mall, Bhopal", lat: 23.293081, long: 77.396385},
	ZWL001466: {name: "Visakhapatnam NAD, Vizag", lat: 17.749616, long: 83.230677},
	ZWL003024: {name: "Visakhapatnam Gajuwaka", lat: 17.681004, long: 83.207459},
	ZWL004755: {name: "Visakhapatnam Dwaraka Nagar", lat: 17.739116, long: 83.324672},
	ZWL009959: {name: "Visakhapatnam Madhurawada", lat: 17.789823, long: 83.373031},
	ZWL007491: {name: "Bhubaneswar Madhusudan Nagar, Bhubaneswar", lat: 20.278497, long: 85.824922},
	ZWL003084: {name: "Bhubaneswar Kalinga Nagar, Bhubneshwar", lat: 20.277934, long: 85.773884},
	ZWL003270: {name: "Bhubaneswar Nayapalli, Bhubneshwar", lat: 20.299879, long: 85.813518},
	ZWL007379: {name: "Bhubaneswar Sahid Nagar, Bhubaneshwar", lat: 20.289125, long: 85.856680},
	ZWL001823: {name: "Bhubaneswar Lakshmi Sagar, Bhubneshwar", lat: 20.266492, long: 85.851166},
	ZWL004098: {name: "Bhubaneswar Khandagiri, Bhubneshwar", lat: 20.246979, long: 85.766384},
	ZWL008906: {name: "Bhubaneswar Jagmohan Nagar, Bhubaneswar", lat: 20.257002, long: 85.789371},
	ZWL002821: {name: "Bhubaneswar Kharabela Nagar, Bhubaneswar", lat: 20.271584, long: 85.840940},
	ZWL009572: {name: "Bhubaneswar Chandrasekharpur, Bhubaneswar", lat: 20.317124, long: 85.806992},
	ZWL005652: {name: "Bhubaneswar Patia, Bhubneshwar", lat: 20.363954, long: 85.814321},
	ZWL003661: {name: "Coimbatore Gandhipuram, Coimbatore", lat: 11.019095, long: 76.968472},
	ZWL005742: {name: "Coimbatore Vadavalli", lat: 11.024820, long: 76.900648},
	ZWL008653: {name: "Coimbatore RS Puram, Coimbatore", lat: 11.000355, long: 76.941985},
	ZWL002703: {name: "Coimbatore Racecourse, Coimbatore", lat: 10.999272, long: 76.975662},
	ZWL009668: {name: "Coimbatore Saibaba Colony, Coimbatore", lat: 11.032946, long: 76.944253},
	ZWL007527: {name: "Coimbatore Peelamedu, Coimbatore", lat: 11.026179, long: 77.005899},
	ZWL005468: {name: "Coimbatore Podanur, Coimbatore", lat: 10.977206, long: 76.981702},
	ZWL004408: {name: "Coimbatore Kunniamuthur, Coimbatore", lat: 10.937589, long: 76.933705},
	ZWL008265: {name: "Coimbatore Ondipudur, Coimbatore", lat: 10.997670, long: 77.042986},
	ZWL007600: {name: "Coimbatore Koundampalayam", lat: 11.068353, long: 76.937962},
	ZWL002147: {name: "Coimbatore Saravanampatty", lat: 11.070812, long: 76.998053},
	ZWL009595: {name: "Coimbatore Ganapathypudur, Coimbatore", lat: 11.042698, long: 76.984477},
	ZWL001279: {name: "Coimbatore Sitra, and Singanallur, Coimbatore", lat: 11.042569, long: 77.054996},
	ZWL006449: {name: "Mangalore South Mangalore", lat: 12.879030, long: 74.854593},
	ZWL009478: {name: "Mangalore Thokkattu, Mangalore", lat: 12.820460, long: 74.865765},
	ZWL002354: {name: "Vadodara Waghodia", lat: 22.300216, long: 73.229259},
	ZWL004097: {name: "Vadodara Fatehgunj", lat: 22.315398, long: 73.199769},
	ZWL009713: {name: "Vadodara Nizampura", lat: 22.334731, long: 73.176306},
	ZWL008938: {name: "Vadodara Diwalipura", lat: 22.302691, long: 73.156120},
	ZWL004439: {name: "Vadodara Akota", lat: 22.298674, long: 73.178672},
	ZWL002446: {name: "Vadodara Manjalpur, Vadodara", lat: 22.257070, long: 73.191150},
	ZWL008232: {name: "Vadodara Shubhanpura", lat: 22.321614, long: 73.160014},
	ZWL002475: {name: "Vadodara Alkapuri", lat: 22.313140, long: 73.172760},
	ZWL005549: {name: "Nagpur Pratap Nagar", lat: 21.114916, long: 79.051774},
	ZWL001438: {name: "Nagpur Sadar", lat: 21.171681, long: 79.072065},
	ZWL006432: {name: "Nagpur Kharabi, Nagpur", lat: 21.144692, long: 79.136306},
	ZWL009782: {name: "Nagpur Hanuman Nagar", lat: 21.131152, long: 79.100974},
	ZWL008282: {name: "Nagpur Dharampeth", lat: 21.131547, long: 79.056027},
	ZWL001041: {name: "Nagpur Manish Nagar", lat: 21.091663, long: 79.072458},
	ZWL007188: {name: "Nagpur Ayodhya Nagar, Nagpur", lat: 21.103625, long: 79.104888},
	ZWL003633: {name: "Nagpur Gandhibagh", lat: 21.146868, long: 79.103994},
	ZWL002458: {name: "Mysore Central Mysore", lat: 12.326689, long: 76.633539},
	ZWL005095: {name: "Surat Udhna, Surat", lat: 21.166218, long: 72.850231},
	ZWL002155: {name: "Surat City Light, Surat", lat: 21.159272, long: 72.791465},
	ZWL007951: {name: "Surat Athwa", lat: 21.168804, long: 72.803931},
	ZWL006000: {name: "Surat Vesu, Surat", lat: 21.136777, long: 72.762895},
	ZWL008198: {name: "Surat Adajan, Surat", lat: 21.211151, long: 72.793110},
	ZWL002771: {name: "Surat Varaccha, Surat", lat: 21.210937, long: 72.857374},
	ZWL005626: {name: "Surat New Textile Market, Surat", lat: 21.199018, long: 72.828239},
	ZWL005423: {name: "Surat Katargam, Surat", lat: 21.231792, long: 72.824230},
	ZWL009343: {name: "Trivandrum Kazhakoottam, Thiruvananthapuram", lat: 8.575170, long: 76.904888},
	ZWL007746: {name: "Trivandrum Tvm Central", lat: 8.490977, long: 76.969250},
	ZWL002223: {name: "Trivandrum Nemom, Thiruvananthapuram", lat: 8.430376, long: 77.027424},
	ZWL005308: {name: "Vijayawada Governorpet, Vijayawada", lat: 16.520989, long: 80.636340},
	ZWL004428: {name: "Vijayawada Gunadala, Vijayawada", lat: 16.515748, long: 80.690025},
	ZWL002106: {name: "Vijayawada Gollapudi, Vijayawada", lat: 16.541337, long: 80.585061},
	ZWL005858: {name: "Vijayawada Auto Nagar, Vijayawada", lat: 16.487591, long: 80.685560},
	ZWL003905: {name: "Vijayawada Labbipet, Vijayawada", lat: 16.510686, long: 80.648812},
	ZWL009921: {name: "Jalandhar Shastri Nagar, Jalandhar", lat: 31.323693, long: 75.583627},
	ZWL002344: {name: "Jalandhar Gurdev Nagar, Jalandhar", lat: 31.347368, long: 75.566556},
	ZWL001077: {name: "Jalandhar Paragpur, Jalandhar", lat: 31.285004, long: 75.648457},
	ZWL005408: {name: "Jalandhar Model Town, Jalandhar", lat: 31.299818, long: 75.582441},
	ZWL001624: {name: "Jalandhar Basti Nau, Jalandhar", lat: 31.327456, long: 75.549901},
	ZWL004713: {name: "Jalandhar Rama Mandi, Jalandhar", lat: 31.314281, long: 75.617635},
	ZWL007457: {name: "Jammu Greater Kailash, Jammu", lat: 32.670712, long: 74.901243},
	ZWL005892: {name: "Jammu Barnai, Jammu", lat: 32.755253, long: 74.825204},
	ZWL008753: {name: "Jammu Gandhi Nagar, Jammu", lat: 32.704392, long: 74.864830},
	ZWL008047: {name: "Jammu OLD JAMMU, Jammu", lat: 32.727614, long: 74.856395},
	ZWL002687: {name: "Jammu Channi Himmat, Jammu", lat: 32.690740, long: 74.886902},
	ZWL003195: {name: "Raipur Shankar Nagar, Raipur", lat: 21.251392, long: 81.663850},
	ZWL009896: {name: "Raipur Purena, Raipur", lat: 21.235636, long: 81.692460},
	ZWL001038: {name: "Raipur Mowa, Raipur", lat: 21.272467, long: 81.671100},
	ZWL008872: {name: "Raipur Mahaveer Nagar", lat: 21.210730, long: 81.640523},
	ZWL004310: {name: "Raipur Samta Colony, Raipur", lat: 21.243164, long: 81.621252},
	ZWL006651: {name: "Raipur Civil Lines, Raipur", lat: 21.243402, long: 81.650848},
	ZWL008695: {name: "Raipur Devendra Nagar", lat: 21.252033, long: 81.650070},
}
