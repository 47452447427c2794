package weread

// Wire types for the WeRead web API. Field names follow the service's
// JSON; only the fields the pipeline consumes are mapped.

// apiError is embedded in every response body. The service reports
// auth problems here with a 200 status.
type apiError struct {
	ErrCode    int    `json:"errCode"`
	ErrCodeAlt int    `json:"errcode"`
	ErrMsg     string `json:"errMsg"`
}

// code returns the error code under either casing.
func (e *apiError) code() int {
	if e.ErrCode != 0 {
		return e.ErrCode
	}
	return e.ErrCodeAlt
}

// errCodeAuthExpired is returned when the session cookie is no longer
// valid and must be refreshed from the browser.
const errCodeAuthExpired = -2012

// notebookResponse is the /api/user/notebook body.
type notebookResponse struct {
	apiError
	Books          []notebookEntry `json:"books"`
	TotalBookCount int             `json:"totalBookCount"`
}

// notebookEntry is one annotated book in the notebook listing.
type notebookEntry struct {
	BookID string `json:"bookId"`
	Book   struct {
		Title      string `json:"title"`
		Author     string `json:"author"`
		Categories []struct {
			Title string `json:"title"`
		} `json:"categories"`
	} `json:"book"`
	NoteCount   int `json:"noteCount"`
	ReviewCount int `json:"reviewCount"`
}

// bookmarkListResponse is the /web/book/bookmarklist body.
type bookmarkListResponse struct {
	apiError
	Updated []struct {
		BookmarkID  string `json:"bookmarkId"`
		ChapterUID  int    `json:"chapterUid"`
		ChapterName string `json:"chapterName"`
		MarkText    string `json:"markText"`
		CreateTime  int64  `json:"createTime"`
	} `json:"updated"`
}

// reviewListResponse is the /web/review/list body. Reviews arrive
// nested one level down.
type reviewListResponse struct {
	apiError
	Reviews []struct {
		Review struct {
			ReviewID    string `json:"reviewId"`
			ChapterUID  int    `json:"chapterUid"`
			ChapterName string `json:"chapterName"`
			Abstract    string `json:"abstract"`
			Content     string `json:"content"`
			CreateTime  int64  `json:"createTime"`
		} `json:"review"`
	} `json:"reviews"`
	TotalCount int `json:"totalCount"`
}
