package sitegen

var funFacts = []string{
	"The first website was created in 1991!",
	"GeoCities was the 3rd most visited site in 1999!",
	"The dancing baby GIF is from 1996!",
	"Netscape Navigator once had 90% market share!",
	"The <blink> tag was considered a feature!",
	"AOL sent out millions of free trial CDs!",
	"Dial-up modems made that iconic sound!",
	"Web rings were the original social networks!",
}
