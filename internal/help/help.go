// Package help holds the user command reference.
package help

import (
	"strings"

	"github.com/cleared-dev/budgetbuddy/internal/parser"
)

const addHelp = `## add
Record an income or expense against an account.

    add /a/ACCOUNT_NUMBER /t/TYPE /n/DESCRIPTION /$/AMOUNT /d/DATE [/c/CATEGORY]

- TYPE is Income or Expense
- AMOUNT is a non-negative number such as 10.50
- DATE is dd-MM-yyyy
- CATEGORY is a number or name; you are asked for one when it is left out

Example: ` + "`add /a/1 /t/Expense /n/Lunch /$/12.50 /d/01-01-2024 /c/1`" + `
`

const deleteHelp = `## delete
Remove a transaction by its number in ` + "`list`" + `.

    delete INDEX
`

const editHelp = `## edit
Replace a transaction. You are shown the current entry and asked for the new details
in the same form as add, without the command word.

    edit INDEX

Leave out /c/ to keep the current category.
`

const listHelp = `## list
Show transactions. You are asked to pick a view:

1. all transactions
2. past week
3. past month
4. custom date range (start and end dates, dd-MM-yyyy, both included)
`

const searchHelp = `## search
Find transactions whose description contains the term or whose category is the term.

    search TERM
`

const accountsHelp = `## accounts
- ` + "`add-acc /n/NAME [/$/OPENING_BALANCE]`" + ` creates an account
- ` + "`list-acc`" + ` shows accounts and balances
- ` + "`edit-acc /a/ACCOUNT_NUMBER /n/NEW_NAME`" + ` renames an account
- ` + "`delete-acc ACCOUNT_NUMBER`" + ` removes an account and all of its transactions
`

const insightsHelp = `## insights
Show income and expense totals per category.
`

const allHelp = `# Commands
| command | does |
|---|---|
| add | record a transaction |
| delete | remove a transaction |
| edit | replace a transaction |
| list | show transactions |
| search | find transactions |
| add-acc, list-acc, edit-acc, delete-acc | manage accounts |
| insights | category totals |
| help [topic] | this text, or details on one command |
| bye | exit |

Commas are not allowed anywhere in input.
`

var topics = map[string]string{
	parser.TopicAdd:      addHelp,
	parser.TopicDelete:   deleteHelp,
	parser.TopicEdit:     editHelp,
	parser.TopicList:     listHelp,
	parser.TopicSearch:   searchHelp,
	parser.TopicAccounts: accountsHelp,
	parser.TopicInsights: insightsHelp,
}

// Topic returns the markdown for topic. The catch-all topic lists every command.
func Topic(topic string) string {
	if md, ok := topics[strings.ToLower(topic)]; ok {
		return md
	}
	return allHelp
}
