package directory

// ukRegions is the built-in UK hierarchy. Order here is the display order and
// the resolution tie-break order.
var ukRegions = []Region{
	{
		Name: "East Midlands",
		Counties: []County{
			{Name: "Derbyshire", Towns: []string{"Derby", "Chesterfield", "Buxton", "Glossop"}},
			{Name: "Leicestershire", Towns: []string{"Leicester", "Loughborough", "Hinckley", "Melton Mowbray"}},
			{Name: "Lincolnshire", Towns: []string{"Lincoln", "Grantham", "Boston", "Skegness"}},
			{Name: "Northamptonshire", Towns: []string{"Northampton", "Kettering", "Corby", "Wellingborough"}},
			{Name: "Nottinghamshire", Towns: []string{"Nottingham", "Mansfield", "Newark-on-Trent", "Worksop"}},
			{Name: "Rutland", Towns: []string{"Oakham", "Uppingham"}},
		},
	},
	{
		Name: "East of England",
		Counties: []County{
			{Name: "Bedfordshire", Towns: []string{"Bedford", "Luton", "Dunstable", "Leighton Buzzard"}},
			{Name: "Cambridgeshire", Towns: []string{"Cambridge", "Peterborough", "Ely", "Wisbech", "Huntingdon"}},
			{Name: "Essex", Towns: []string{"Chelmsford", "Colchester", "Southend-on-Sea", "Basildon", "Harlow", "Braintree"}},
			{Name: "Hertfordshire", Towns: []string{"St Albans", "Watford", "Hemel Hempstead", "Stevenage", "Hertford"}},
			{Name: "Norfolk", Towns: []string{"Norwich", "Great Yarmouth", "King's Lynn", "Thetford"}},
			{Name: "Suffolk", Towns: []string{"Ipswich", "Bury St Edmunds", "Lowestoft", "Felixstowe"}},
		},
	},
	{
		Name: "London",
		Counties: []County{
			{Name: "Central London", Towns: []string{"Mayfair", "Soho", "Kensington", "Chelsea", "Westminster", "Paddington"}},
			{Name: "East London", Towns: []string{"Stratford", "Canary Wharf", "Ilford", "Romford"}},
			{Name: "North London", Towns: []string{"Camden", "Islington", "Enfield", "Barnet"}},
			{Name: "South London", Towns: []string{"Croydon", "Greenwich", "Bromley", "Wimbledon"}},
			{Name: "West London", Towns: []string{"Ealing", "Hammersmith", "Hounslow", "Uxbridge"}},
		},
	},
	{
		Name: "North East",
		Counties: []County{
			{Name: "County Durham", Towns: []string{"Durham", "Darlington", "Hartlepool", "Bishop Auckland"}},
			{Name: "Northumberland", Towns: []string{"Morpeth", "Alnwick", "Hexham", "Berwick-upon-Tweed"}},
			{Name: "Tyne and Wear", Towns: []string{"Newcastle upon Tyne", "Sunderland", "Gateshead", "South Shields"}},
		},
	},
	{
		Name: "North West",
		Counties: []County{
			{Name: "Cheshire", Towns: []string{"Chester", "Warrington", "Crewe", "Macclesfield"}},
			{Name: "Cumbria", Towns: []string{"Carlisle", "Barrow-in-Furness", "Kendal", "Workington"}},
			{Name: "Greater Manchester", Towns: []string{"Manchester", "Bolton", "Stockport", "Oldham", "Rochdale", "Salford"}},
			{Name: "Lancashire", Towns: []string{"Preston", "Blackpool", "Blackburn", "Burnley", "Lancaster"}},
			{Name: "Merseyside", Towns: []string{"Liverpool", "St Helens", "Southport", "Birkenhead"}},
		},
	},
	{
		Name: "South East",
		Counties: []County{
			{Name: "Berkshire", Towns: []string{"Reading", "Slough", "Bracknell", "Windsor", "Newbury"}},
			{Name: "Buckinghamshire", Towns: []string{"Milton Keynes", "Aylesbury", "High Wycombe", "Amersham"}},
			{Name: "East Sussex", Towns: []string{"Brighton", "Eastbourne", "Hastings", "Lewes"}},
			{Name: "Hampshire", Towns: []string{"Southampton", "Portsmouth", "Winchester", "Basingstoke", "Aldershot"}},
			{Name: "Kent", Towns: []string{"Maidstone", "Canterbury", "Dover", "Dartford", "Ashford", "Margate"}},
			{Name: "Oxfordshire", Towns: []string{"Oxford", "Banbury", "Abingdon", "Witney"}},
			{Name: "Surrey", Towns: []string{"Guildford", "Woking", "Epsom", "Staines"}},
			{Name: "West Sussex", Towns: []string{"Crawley", "Worthing", "Chichester", "Horsham"}},
		},
	},
	{
		Name: "South West",
		Counties: []County{
			{Name: "Bristol", Towns: []string{"Bristol", "Clifton", "Filton"}},
			{Name: "Cornwall", Towns: []string{"Truro", "Falmouth", "Penzance", "Newquay", "St Ives"}},
			{Name: "Devon", Towns: []string{"Exeter", "Plymouth", "Torquay", "Barnstaple", "Exmouth"}},
			{Name: "Dorset", Towns: []string{"Bournemouth", "Poole", "Weymouth", "Dorchester"}},
			{Name: "Gloucestershire", Towns: []string{"Gloucester", "Cheltenham", "Stroud", "Cirencester"}},
			{Name: "Somerset", Towns: []string{"Bath", "Taunton", "Yeovil", "Weston-super-Mare"}},
			{Name: "Wiltshire", Towns: []string{"Swindon", "Salisbury", "Chippenham", "Trowbridge"}},
		},
	},
	{
		Name: "West Midlands",
		Counties: []County{
			{Name: "Herefordshire", Towns: []string{"Hereford", "Leominster", "Ross-on-Wye"}},
			{Name: "Shropshire", Towns: []string{"Shrewsbury", "Telford", "Oswestry", "Ludlow"}},
			{Name: "Staffordshire", Towns: []string{"Stoke-on-Trent", "Stafford", "Burton upon Trent", "Cannock", "Lichfield"}},
			{Name: "Warwickshire", Towns: []string{"Warwick", "Rugby", "Nuneaton", "Stratford-upon-Avon"}},
			{Name: "West Midlands County", Towns: []string{"Birmingham", "Coventry", "Wolverhampton", "Solihull", "Walsall", "Dudley"}},
			{Name: "Worcestershire", Towns: []string{"Worcester", "Kidderminster", "Redditch", "Malvern"}},
		},
	},
	{
		Name: "Yorkshire and the Humber",
		Counties: []County{
			{Name: "East Riding of Yorkshire", Towns: []string{"Hull", "Beverley", "Bridlington", "Goole"}},
			{Name: "North Yorkshire", Towns: []string{"York", "Harrogate", "Scarborough", "Middlesbrough", "Whitby"}},
			{Name: "South Yorkshire", Towns: []string{"Sheffield", "Doncaster", "Rotherham", "Barnsley"}},
			{Name: "West Yorkshire", Towns: []string{"Leeds", "Bradford", "Wakefield", "Huddersfield", "Halifax"}},
		},
	},
	{
		Name: "Scotland",
		Counties: []County{
			{Name: "Aberdeenshire", Towns: []string{"Aberdeen", "Peterhead", "Fraserburgh", "Stonehaven"}},
			{Name: "Fife", Towns: []string{"Dunfermline", "Kirkcaldy", "St Andrews", "Glenrothes"}},
			{Name: "Glasgow and Strathclyde", Towns: []string{"Glasgow", "Paisley", "East Kilbride", "Hamilton", "Ayr"}},
			{Name: "Highland", Towns: []string{"Inverness", "Fort William", "Thurso", "Nairn"}},
			{Name: "Lothian", Towns: []string{"Edinburgh", "Livingston", "Musselburgh", "Dunbar"}},
			{Name: "Tayside", Towns: []string{"Dundee", "Perth", "Arbroath", "Forfar"}},
		},
	},
	{
		Name: "Wales",
		Counties: []County{
			{Name: "Clwyd", Towns: []string{"Wrexham", "Rhyl", "Llandudno", "Colwyn Bay"}},
			{Name: "Dyfed", Towns: []string{"Carmarthen", "Aberystwyth", "Haverfordwest", "Llanelli"}},
			{Name: "Glamorgan", Towns: []string{"Cardiff", "Swansea", "Bridgend", "Barry", "Merthyr Tydfil"}},
			{Name: "Gwent", Towns: []string{"Newport", "Cwmbran", "Abergavenny", "Ebbw Vale"}},
			{Name: "Gwynedd", Towns: []string{"Bangor", "Caernarfon", "Porthmadog", "Pwllheli"}},
			{Name: "Powys", Towns: []string{"Newtown", "Brecon", "Welshpool", "Llandrindod Wells"}},
		},
	},
	{
		Name: "Northern Ireland",
		Counties: []County{
			{Name: "County Antrim", Towns: []string{"Belfast", "Lisburn", "Ballymena", "Carrickfergus"}},
			{Name: "County Armagh", Towns: []string{"Armagh", "Portadown", "Lurgan"}},
			{Name: "County Down", Towns: []string{"Newry", "Bangor", "Newtownards", "Downpatrick"}},
			{Name: "County Londonderry", Towns: []string{"Derry", "Coleraine", "Limavady"}},
		},
	},
}
