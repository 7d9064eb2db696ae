// Package sqlite implements the logbook store on SQLite: table
// definitions, entity repositories, relation management between items
// and their tags/people/jira refs, and the aggregation queries that
// reassemble full entry trees.
package sqlite

// Schema DDL. Every statement is idempotent; the schema is recreated
// on every startup and there is no migration marker.
const (
	createEntries = `CREATE TABLE IF NOT EXISTS entries (
    id TEXT PRIMARY KEY,
    timestamp TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createEntryItems = `CREATE TABLE IF NOT EXISTS entry_items (
    id TEXT PRIMARY KEY,
    entry_id TEXT NOT NULL,
    item_type TEXT NOT NULL,
    content TEXT NOT NULL,
    project TEXT,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    FOREIGN KEY (entry_id) REFERENCES entries (id) ON DELETE CASCADE
);`

	createTags = `CREATE TABLE IF NOT EXISTS tags (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    description TEXT,
    color TEXT NOT NULL,
    category TEXT,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createPeople = `CREATE TABLE IF NOT EXISTS people (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    created_at TEXT NOT NULL
);`

	createJiraRefs = `CREATE TABLE IF NOT EXISTS jira_refs (
    id TEXT PRIMARY KEY,
    entry_item_id TEXT NOT NULL,
    jira_key TEXT NOT NULL,
    created_at TEXT NOT NULL,
    FOREIGN KEY (entry_item_id) REFERENCES entry_items (id) ON DELETE CASCADE
);`

	createItemTags = `CREATE TABLE IF NOT EXISTS item_tags (
    entry_item_id TEXT NOT NULL,
    tag_id TEXT NOT NULL,
    PRIMARY KEY (entry_item_id, tag_id),
    FOREIGN KEY (entry_item_id) REFERENCES entry_items (id) ON DELETE CASCADE,
    FOREIGN KEY (tag_id) REFERENCES tags (id) ON DELETE CASCADE
);`

	createItemPeople = `CREATE TABLE IF NOT EXISTS item_people (
    entry_item_id TEXT NOT NULL,
    person_id TEXT NOT NULL,
    PRIMARY KEY (entry_item_id, person_id),
    FOREIGN KEY (entry_item_id) REFERENCES entry_items (id) ON DELETE CASCADE,
    FOREIGN KEY (person_id) REFERENCES people (id) ON DELETE CASCADE
);`

	createProjects = `CREATE TABLE IF NOT EXISTS projects (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    description TEXT,
    color TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createMeetings = `CREATE TABLE IF NOT EXISTS meetings (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT,
    start_time TEXT,
    end_time TEXT,
    location TEXT,
    meeting_type TEXT NOT NULL,
    status TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createMeetingAttendees = `CREATE TABLE IF NOT EXISTS meeting_attendees (
    id TEXT PRIMARY KEY,
    meeting_id TEXT NOT NULL,
    name TEXT NOT NULL,
    email TEXT,
    role TEXT NOT NULL,
    status TEXT NOT NULL,
    created_at TEXT NOT NULL,
    FOREIGN KEY (meeting_id) REFERENCES meetings (id) ON DELETE CASCADE
);`

	createMeetingActions = `CREATE TABLE IF NOT EXISTS meeting_actions (
    id TEXT PRIMARY KEY,
    meeting_id TEXT NOT NULL,
    entry_item_id TEXT,
    title TEXT NOT NULL,
    description TEXT,
    assignee TEXT,
    due_date TEXT,
    status TEXT NOT NULL,
    priority TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    FOREIGN KEY (meeting_id) REFERENCES meetings (id) ON DELETE CASCADE,
    FOREIGN KEY (entry_item_id) REFERENCES entry_items (id) ON DELETE SET NULL
);`
)

// Index DDL for the lookups the aggregation engine performs per item.
const (
	idxEntryItemsEntry     = `CREATE INDEX IF NOT EXISTS idx_entry_items_entry ON entry_items(entry_id);`
	idxJiraRefsItem        = `CREATE INDEX IF NOT EXISTS idx_jira_refs_item ON jira_refs(entry_item_id);`
	idxItemTagsItem        = `CREATE INDEX IF NOT EXISTS idx_item_tags_item ON item_tags(entry_item_id);`
	idxItemPeopleItem      = `CREATE INDEX IF NOT EXISTS idx_item_people_item ON item_people(entry_item_id);`
	idxMeetingAttendeesMtg = `CREATE INDEX IF NOT EXISTS idx_meeting_attendees_meeting ON meeting_attendees(meeting_id);`
	idxMeetingActionsMtg   = `CREATE INDEX IF NOT EXISTS idx_meeting_actions_meeting ON meeting_actions(meeting_id);`
	idxMeetingActionsItem  = `CREATE INDEX IF NOT EXISTS idx_meeting_actions_item ON meeting_actions(entry_item_id);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createEntries,
	createEntryItems,
	createTags,
	createPeople,
	createJiraRefs,
	createItemTags,
	createItemPeople,
	createProjects,
	createMeetings,
	createMeetingAttendees,
	createMeetingActions,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxEntryItemsEntry,
	idxJiraRefsItem,
	idxItemTagsItem,
	idxItemPeopleItem,
	idxMeetingAttendeesMtg,
	idxMeetingActionsMtg,
	idxMeetingActionsItem,
}
