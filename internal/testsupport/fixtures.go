package testsupport

// MoviesCSV is a small movie export. Seven rows are usable; "Broken Row" has
// no rating and is dropped on load. Every usable title is a Drama.
const MoviesCSV = `Rank,Title,Genre,Description,Director,Actors,Year,Runtime (Minutes),Rating,Votes,Revenue (Millions),Metascore
1,The Dark Knight,"Action,Crime,Drama",Batman,Christopher Nolan,"Christian Bale, Heath Ledger, Aaron Eckhart",2008,152,9.0,1791916,533.32,82
2,Inception,"Action,Adventure,Sci-Fi,Drama",Dreams,Christopher Nolan,"Leonardo DiCaprio, Joseph Gordon-Levitt",2010,148,8.8,1583625,292.57,74
3,The Prestige,"Drama,Mystery,Sci-Fi",Magicians,Christopher Nolan,"Christian Bale, Hugh Jackman",2006,130,8.5,913152,53.08,66
4,Whiplash,"Drama,Music",Drummer,Damien Chazelle,"Miles Teller, J.K. Simmons",2014,107,8.5,477276,13.09,88
5,The Departed,"Crime,Drama,Thriller",Cops,Martin Scorsese,"Leonardo DiCaprio, Matt Damon",2006,151,8.5,937414,132.37,85
6,Room,Drama,Captive,Lenny Abrahamson,"Brie Larson, Jacob Tremblay",2015,118,8.2,224132,14.68,86
7,The Fighter,"Biography,Drama,Sport",Boxing,David O. Russell,"Mark Wahlberg, Christian Bale, Amy Adams",2010,116,7.8,290056,93.57,79
8,Broken Row,Drama,Nothing,Nobody,Nobody,2012,100,,10,,
`

// AwardsCSV is a small award export matching titles in MoviesCSV.
const AwardsCSV = `year_film,year_ceremony,ceremony,category,name,film,winner
2008,2009,81,ACTOR IN A SUPPORTING ROLE,Heath Ledger,The Dark Knight,True
2008,2009,81,CINEMATOGRAPHY,Wally Pfister,The Dark Knight,False
2010,2011,83,CINEMATOGRAPHY,Wally Pfister,Inception,True
2010,2011,83,BEST PICTURE,Emma Thomas,Inception,False
2015,2016,88,ACTRESS IN A LEADING ROLE,Brie Larson,Room,True
2010,2011,83,ACTOR IN A SUPPORTING ROLE,Christian Bale,The Fighter,True
`
