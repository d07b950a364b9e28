package render

import "github.com/jonathan/resume-wizard/internal/types"

func init() {
	register(types.TemplateCompact, compactMarkup)
}

// compactMarkup is the space-efficient two-column layout: a narrow sidebar
// carrying skills, education, certifications, and languages next to a main
// column with the summary and experience.
const compactMarkup = `<style>
.compact { font-family: Helvetica, Arial, sans-serif; font-size: 9px; color: #333; }
.compact .header { margin-bottom: 8px; }
.compact .name { font-size: 17px; font-weight: bold; color: #1a1a1a; }
.compact .contact { font-size: 8px; color: #555; }
.compact .columns { display: flex; gap: 12px; }
.compact .sidebar { width: 32%; }
.compact .main { width: 68%; }
.compact h2 { font-size: 10px; font-weight: bold; color: #1a1a1a; text-transform: uppercase; margin: 8px 0 3px; }
.compact .job-title { font-weight: bold; color: #333; }
.compact .company { color: #555; }
.compact .dates { font-size: 8px; color: #777; }
.compact ul { margin: 2px 0 0 0; padding: 0; list-style: none; }
.compact li { margin-bottom: 1px; color: #444; }
.compact li::before { content: "\2013"; color: #2563eb; margin-right: 4px; }
.compact .skill { margin-bottom: 1px; }
.compact .side-entry { margin-bottom: 4px; }
</style>
<div class="compact">
  <div class="header">
    <div class="name">{{.Name}}</div>
    <div class="contact">{{.ContactLine}}{{if .LinkedIn}} | {{.LinkedIn}}{{end}}</div>
  </div>
  <div class="columns">
    <div class="sidebar">
      {{if .Skills}}
      <section class="skills">
        <h2>Skills</h2>
        {{range .Skills}}<div class="skill">{{.}}</div>
        {{end}}
      </section>
      {{end}}
      {{if .Education}}
      <section class="education">
        <h2>Education</h2>
        {{range .Education}}
        <div class="side-entry">
          <div class="job-title">{{.Degree}}</div>
          <div class="company">{{.Institution}}</div>
          <div class="dates">{{.Dates}}</div>
          {{if .GPA}}<div class="dates">GPA: {{.GPA}}</div>{{end}}
        </div>
        {{end}}
      </section>
      {{end}}
      {{if .Certifications}}
      <section class="certifications">
        <h2>Certifications</h2>
        {{range .Certifications}}<div class="side-entry">{{.}}</div>
        {{end}}
      </section>
      {{end}}
      {{if .Languages}}
      <section class="languages">
        <h2>Languages</h2>
        {{range .Languages}}<div class="side-entry">{{.}}</div>
        {{end}}
      </section>
      {{end}}
    </div>
    <div class="main">
      {{if .Summary}}
      <section class="summary">
        <h2>Summary</h2>
        <p>{{.Summary}}</p>
      </section>
      {{end}}
      {{if .Experience}}
      <section class="experience">
        <h2>Experience</h2>
        {{range .Experience}}
        <div class="entry">
          <div class="job-title">{{.Title}}</div>
          <div class="company">{{.Company}} <span class="dates">{{.Dates}}</span></div>
          {{if .Bullets}}
          <ul>
            {{range .Bullets}}<li>{{.}}</li>
            {{end}}
          </ul>
          {{end}}
        </div>
        {{end}}
      </section>
      {{end}}
      {{if .Projects}}
      <section class="projects">
        <h2>Projects</h2>
        {{range .Projects}}
        <div class="entry">
          <div class="job-title">{{.Name}}</div>
          <p>{{.Description}}{{if .URL}} ({{.URL}}){{end}}</p>
        </div>
        {{end}}
      </section>
      {{end}}
    </div>
  </div>
</div>`
